package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"fleetgate/config"
	"fleetgate/internal/domain/entity"
	domainerrors "fleetgate/internal/domain/errors"
	"fleetgate/internal/domain/repository"
	"fleetgate/internal/usecase"
)

type deviceService struct {
	deviceRepo repository.DeviceRepository
	recentRepo repository.RecentDeviceRepository
	cfg        *config.Config
	logger     *slog.Logger
}

// NewDeviceService creates the device usecase backed by the upstream API
// and the recent-device store.
func NewDeviceService(
	deviceRepo repository.DeviceRepository,
	recentRepo repository.RecentDeviceRepository,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.DeviceUsecase {
	return &deviceService{
		deviceRepo: deviceRepo,
		recentRepo: recentRepo,
		cfg:        cfg,
		logger:     logger,
	}
}

func (s *deviceService) LoadRoster(ctx context.Context, session *entity.Session) ([]entity.Device, error) {
	roster, err := s.deviceRepo.FetchAll(ctx, session.Token)
	if err != nil {
		return nil, err
	}

	extra := s.loadMissingRecent(ctx, session, roster)
	return Merge(roster, extra), nil
}

// loadMissingRecent resolves recently-viewed devices absent from the bulk
// roster. Lookups run concurrently; individual failures are logged and
// skipped so a stale recent id never breaks the whole roster.
func (s *deviceService) loadMissingRecent(ctx context.Context, session *entity.Session, roster []entity.Device) []entity.Device {
	recentIDs, err := s.recentRepo.List(ctx, session.Username)
	if err != nil {
		s.logger.Warn("listing recent devices failed", slog.Any("error", err))
		return nil
	}

	present := make(map[string]struct{}, len(roster))
	for _, d := range roster {
		present[d.Key()] = struct{}{}
	}

	var missing []string
	for _, id := range recentIDs {
		if _, ok := present[id]; !ok {
			missing = append(missing, id)
		}
	}
	if len(missing) == 0 {
		return nil
	}

	results := make([][]entity.Device, len(missing))
	g, gctx := errgroup.WithContext(ctx)
	for i, id := range missing {
		g.Go(func() error {
			devices, err := s.deviceRepo.FetchByID(gctx, session.Token, id)
			if err != nil {
				s.logger.Warn("recent device lookup failed",
					slog.String("device_id", id), slog.Any("error", err))
				return nil
			}
			results[i] = devices
			return nil
		})
	}
	_ = g.Wait()

	var extra []entity.Device
	for _, devices := range results {
		extra = append(extra, devices...)
	}
	return extra
}

func (s *deviceService) PresentRoster(roster []entity.Device, opts usecase.ListOptions) *usecase.DeviceTable {
	filtered := FilterDevices(roster, opts.Query)
	SortDevices(filtered)

	rows, page, totalPages := Paginate(filtered, opts.Page, usecase.DevicePageSize)

	return &usecase.DeviceTable{
		Rows:       rows,
		Total:      len(filtered),
		Page:       page,
		TotalPages: totalPages,
		PerPage:    usecase.DevicePageSize,
		Pages:      PageNumbers(page, totalPages),
		SearchHint: searchHint(opts.Query, s.cfg.Search.DirectLookupLength),
	}
}

func (s *deviceService) ListDevices(ctx context.Context, session *entity.Session, opts usecase.ListOptions) (*usecase.DeviceTable, error) {
	roster, err := s.LoadRoster(ctx, session)
	if err != nil {
		return nil, err
	}
	return s.PresentRoster(roster, opts), nil
}

func (s *deviceService) SearchByID(ctx context.Context, session *entity.Session, query string) ([]entity.Device, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil
	}

	devices, err := s.deviceRepo.FetchByID(ctx, session.Token, query)
	if err != nil {
		return nil, err
	}

	for _, d := range devices {
		if d.Key() == "" {
			continue
		}
		if err := s.recentRepo.Touch(ctx, session.Username, d.Key()); err != nil {
			s.logger.Warn("recording recent device failed",
				slog.String("device_id", d.Key()), slog.Any("error", err))
		}
	}

	return devices, nil
}

func (s *deviceService) CreateDevice(ctx context.Context, session *entity.Session, input *usecase.DeviceInput) error {
	id := strings.TrimSpace(input.ID)
	if id == "" {
		return domainerrors.NewValidationError("GPS ID harus diisi.")
	}

	roster, err := s.deviceRepo.FetchAll(ctx, session.Token)
	if err != nil {
		return err
	}
	for _, d := range roster {
		if d.Key() == id {
			return domainerrors.NewDuplicateDeviceError(id)
		}
	}

	if err := s.deviceRepo.Create(ctx, session.Token, devicePayload(id, input)); err != nil {
		return err
	}

	if err := s.recentRepo.Touch(ctx, session.Username, id); err != nil {
		s.logger.Warn("recording recent device failed",
			slog.String("device_id", id), slog.Any("error", err))
	}

	return nil
}

func (s *deviceService) UpdateDevice(ctx context.Context, session *entity.Session, id string, input *usecase.DeviceInput) error {
	return s.deviceRepo.Update(ctx, session.Token, id, devicePayload(id, input))
}

func (s *deviceService) DeleteDevice(ctx context.Context, session *entity.Session, id string) error {
	return s.deviceRepo.Delete(ctx, session.Token, id)
}

func (s *deviceService) NewSearchSession(session *entity.Session, apply func([]entity.Device)) usecase.SearchSession {
	return newSearchSession(
		s.cfg.Search.Debounce,
		s.cfg.Search.DirectLookupLength,
		func(ctx context.Context, query string) ([]entity.Device, error) {
			ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
			defer cancel()
			return s.SearchByID(ctx, session, query)
		},
		apply,
		s.logger,
	)
}

func devicePayload(id string, input *usecase.DeviceInput) map[string]any {
	return map[string]any{
		"id":         id,
		"owner":      input.Owner,
		"gsm":        input.GSM,
		"plate":      input.Plate,
		"timezone":   input.Timezone,
		"registered": input.Registered,
	}
}
