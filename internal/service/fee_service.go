package service

import (
	"context"
	"time"

	"molle-settlement/config"
	"molle-settlement/internal/cache"
	"molle-settlement/internal/fee"
	"molle-settlement/internal/model"
	"molle-settlement/internal/repository"
	apperrors "molle-settlement/pkg/app_errors"
	"molle-settlement/pkg/logger"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Quote 結帳前的費用試算
type Quote struct {
	EventID     int             `json:"event_id"`
	PackageID   int             `json:"package_id"`
	Quantity    int             `json:"quantity"`
	Percentages fee.Percentages `json:"percentages"`
	PerTicket   fee.Breakdown   `json:"per_ticket"`
	Total       fee.Breakdown   `json:"total"`
}

type FeeService interface {
	// PlatformDefaults 平台預設費率 (Redis 快取 -> platform_settings -> 設定檔)
	PlatformDefaults(ctx context.Context) (fee.Percentages, error)
	// RefreshDefaults 清除快取後重新讀取 platform_settings
	RefreshDefaults(ctx context.Context) (fee.Percentages, error)
	// ResolvePercentages 套用主辦方議定費率；沒有推薦人時 referral 為 0
	ResolvePercentages(ctx context.Context, host *model.User, referred bool) (fee.Percentages, error)
	Quote(ctx context.Context, eventID, packageID, quantity int) (*Quote, error)
}

type FeeServiceImpl struct {
	settingsRepo repository.SettingsRepository
	eventRepo    repository.EventRepository
	userRepo     repository.UserRepository
	cache        cache.FeeSettingsCache
	defaults     config.FeeDefaults
	cacheTTL     time.Duration
}

func NewFeeService(
	settingsRepo repository.SettingsRepository,
	eventRepo repository.EventRepository,
	userRepo repository.UserRepository,
	feeCache cache.FeeSettingsCache,
	defaults config.FeeDefaults,
	cacheTTL time.Duration,
) FeeService {
	return &FeeServiceImpl{
		settingsRepo: settingsRepo,
		eventRepo:    eventRepo,
		userRepo:     userRepo,
		cache:        feeCache,
		defaults:     defaults,
		cacheTTL:     cacheTTL,
	}
}

func (s *FeeServiceImpl) PlatformDefaults(ctx context.Context) (fee.Percentages, error) {
	log := logger.WithComponent("fee")

	if p, ok, err := s.cache.Get(ctx); err != nil {
		log.Warn("fee settings cache read failed", zap.Error(err))
	} else if ok {
		return p, nil
	}

	settings, err := s.settingsRepo.GetFeeSettings(ctx)
	if err != nil {
		return fee.Percentages{}, err
	}

	p := fee.Percentages{
		UserFee:     pick(settings, repository.SettingUserFeePercentage, s.defaults.UserFee),
		HostFee:     pick(settings, repository.SettingHostFeePercentage, s.defaults.HostFee),
		PlatformFee: pick(settings, repository.SettingPlatformFeePercentage, s.defaults.PlatformFee),
		CGST:        pick(settings, repository.SettingCGSTPercentage, s.defaults.CGST),
		SGST:        pick(settings, repository.SettingSGSTPercentage, s.defaults.SGST),
		Referral:    pick(settings, repository.SettingReferralPercentage, s.defaults.Referral),
	}.Clamp()

	if err := s.cache.Set(ctx, p, s.cacheTTL); err != nil {
		log.Warn("fee settings cache write failed", zap.Error(err))
	}

	return p, nil
}

func (s *FeeServiceImpl) RefreshDefaults(ctx context.Context) (fee.Percentages, error) {
	if err := s.cache.Invalidate(ctx); err != nil {
		return fee.Percentages{}, err
	}
	return s.PlatformDefaults(ctx)
}

func pick(settings map[string]decimal.Decimal, key string, fallback string) decimal.Decimal {
	if v, ok := settings[key]; ok {
		return v
	}
	d, err := decimal.NewFromString(fallback)
	if err != nil {
		logger.WithComponent("fee").Warn("invalid default fee percentage", zap.String("key", key), zap.String("value", fallback))
		return decimal.Zero
	}
	return d
}

func (s *FeeServiceImpl) ResolvePercentages(ctx context.Context, host *model.User, referred bool) (fee.Percentages, error) {
	p, err := s.PlatformDefaults(ctx)
	if err != nil {
		return fee.Percentages{}, err
	}

	if host != nil && host.CustomHostFeePercentage != nil {
		p.HostFee = *host.CustomHostFeePercentage
	}
	if !referred {
		p.Referral = decimal.Zero
	}

	return p.Clamp(), nil
}

func (s *FeeServiceImpl) Quote(ctx context.Context, eventID, packageID, quantity int) (*Quote, error) {
	if quantity <= 0 {
		return nil, apperrors.ErrInvalidInput
	}

	event, err := s.eventRepo.FindByID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	pkg, ok := event.FindPackage(packageID)
	if !ok {
		return nil, apperrors.ErrPackageNotFound
	}

	host, err := s.userRepo.FindByID(ctx, event.HostID)
	if err != nil {
		return nil, err
	}

	p, err := s.ResolvePercentages(ctx, host, false)
	if err != nil {
		return nil, err
	}

	perTicket, err := fee.Calculate(pkg.Price, p)
	if err != nil {
		return nil, err
	}

	return &Quote{
		EventID:     eventID,
		PackageID:   packageID,
		Quantity:    quantity,
		Percentages: p,
		PerTicket:   perTicket.Rounded(),
		Total:       perTicket.Times(quantity).Rounded(),
	}, nil
}
