package services

import (
	"context"
	"strconv"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/imovelhub/imovelhub-backend/internal/domain/entities"
	"github.com/imovelhub/imovelhub-backend/internal/domain/errors"
	"github.com/imovelhub/imovelhub-backend/internal/domain/ports"
	"github.com/imovelhub/imovelhub-backend/internal/domain/repositories"
)

const settingsCacheTTL = 30 * time.Second

// SettingsService expõe a configuração chave/valor da plataforma.
// Leituras passam por um cache TTL curto; escritas invalidam a entrada.
type SettingsService struct {
	settingRepo repositories.SettingRepository
	cache       *gocache.Cache
	logger      ports.Logger
}

// NewSettingsService cria um novo SettingsService
func NewSettingsService(settingRepo repositories.SettingRepository, logger ports.Logger) *SettingsService {
	return &SettingsService{
		settingRepo: settingRepo,
		cache:       gocache.New(settingsCacheTTL, 5*time.Minute),
		logger:      logger,
	}
}

// Get retorna a configuração da chave ou ErrSettingNotFound
func (s *SettingsService) Get(ctx context.Context, key string) (*entities.Setting, error) {
	if cached, ok := s.cache.Get(key); ok {
		return cached.(*entities.Setting), nil
	}

	setting, err := s.settingRepo.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if setting == nil {
		return nil, errors.ErrSettingNotFound
	}

	s.cache.Set(key, setting, gocache.DefaultExpiration)
	return setting, nil
}

// GetAll retorna o mapeamento chave→valor completo.
// Tabela ausente resulta em mapa vazio, nunca em erro.
func (s *SettingsService) GetAll(ctx context.Context) (map[string]string, error) {
	settings, err := s.settingRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	values := make(map[string]string, len(settings))
	for _, setting := range settings {
		values[setting.Key] = setting.Value
	}
	return values, nil
}

// Set grava (upsert) uma configuração e invalida o cache da chave
func (s *SettingsService) Set(ctx context.Context, key, value string, description *string) (*entities.Setting, error) {
	setting := &entities.Setting{
		Key:         key,
		Value:       value,
		Description: description,
	}

	if err := s.settingRepo.Upsert(ctx, setting); err != nil {
		return nil, err
	}

	s.cache.Delete(key)
	s.logger.Info("setting updated", "key", key)
	return setting, nil
}

// GetPaymentConfig deriva os percentuais de pagamento das duas chaves.
// Chave ausente ou valor ilegível cai no percentual padrão; valores
// malformados nunca propagam como NaN.
func (s *SettingsService) GetPaymentConfig(ctx context.Context) (*entities.PaymentConfig, error) {
	platformFee, err := s.feeValue(ctx, entities.SettingPlatformFee, entities.DefaultPlatformFee)
	if err != nil {
		return nil, err
	}

	agencyFee, err := s.feeValue(ctx, entities.SettingAgencyFee, entities.DefaultAgencyFee)
	if err != nil {
		return nil, err
	}

	return &entities.PaymentConfig{
		PlatformFee: platformFee,
		AgencyFee:   agencyFee,
	}, nil
}

// UpdatePaymentConfig grava os dois percentuais e retorna a configuração
// relida. A validação de faixa (0–100) é feita na borda HTTP.
func (s *SettingsService) UpdatePaymentConfig(ctx context.Context, platformFee, agencyFee float64) (*entities.PaymentConfig, error) {
	if _, err := s.Set(ctx, entities.SettingPlatformFee, formatFee(platformFee), nil); err != nil {
		return nil, err
	}
	if _, err := s.Set(ctx, entities.SettingAgencyFee, formatFee(agencyFee), nil); err != nil {
		return nil, err
	}

	return s.GetPaymentConfig(ctx)
}

func (s *SettingsService) feeValue(ctx context.Context, key string, fallback float64) (float64, error) {
	setting, err := s.settingRepo.Get(ctx, key)
	if err != nil {
		return 0, err
	}
	if setting == nil {
		return fallback, nil
	}

	value, err := strconv.ParseFloat(setting.Value, 64)
	if err != nil {
		s.logger.Warn("malformed fee setting, using default",
			"key", key,
			"value", setting.Value,
			"default", fallback,
		)
		return fallback, nil
	}

	return value, nil
}

func formatFee(fee float64) string {
	return strconv.FormatFloat(fee, 'f', -1, 64)
}
