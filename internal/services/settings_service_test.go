package services

import (
	"context"
	"testing"

	"github.com/imovelhub/imovelhub-backend/internal/domain/entities"
	"github.com/imovelhub/imovelhub-backend/internal/domain/errors"
)

func TestSettingsService_Get(t *testing.T) {
	t.Run("retorna a configuração existente", func(t *testing.T) {
		repo := newFakeSettingRepo()
		service := NewSettingsService(repo, nopLogger{})

		if _, err := service.Set(context.Background(), "site.title", "ImovelHub", nil); err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}

		setting, err := service.Get(context.Background(), "site.title")
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
		if setting.Value != "ImovelHub" {
			t.Errorf("esperava 'ImovelHub', obteve '%s'", setting.Value)
		}
	})

	t.Run("chave ausente resulta em not found", func(t *testing.T) {
		service := NewSettingsService(newFakeSettingRepo(), nopLogger{})

		_, err := service.Get(context.Background(), "nope")
		if err != errors.ErrSettingNotFound {
			t.Fatalf("esperava ErrSettingNotFound, obteve %v", err)
		}
	})

	t.Run("tabela não migrada não lança erro", func(t *testing.T) {
		repo := newFakeSettingRepo()
		repo.tableMissing = true
		service := NewSettingsService(repo, nopLogger{})

		_, err := service.Get(context.Background(), "qualquer")
		if err != errors.ErrSettingNotFound {
			t.Fatalf("esperava ErrSettingNotFound, obteve %v", err)
		}
	})

	t.Run("leituras repetidas servem do cache", func(t *testing.T) {
		repo := newFakeSettingRepo()
		service := NewSettingsService(repo, nopLogger{})

		if _, err := service.Set(context.Background(), "k", "v1", nil); err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
		if _, err := service.Get(context.Background(), "k"); err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}

		// Mudança por fora do serviço não aparece enquanto o cache vale
		repo.settings["k"] = &entities.Setting{Key: "k", Value: "v2"}

		setting, err := service.Get(context.Background(), "k")
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
		if setting.Value != "v1" {
			t.Errorf("esperava valor cacheado 'v1', obteve '%s'", setting.Value)
		}
	})

	t.Run("escrita invalida o cache da chave", func(t *testing.T) {
		repo := newFakeSettingRepo()
		service := NewSettingsService(repo, nopLogger{})

		if _, err := service.Set(context.Background(), "k", "v1", nil); err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
		if _, err := service.Get(context.Background(), "k"); err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
		if _, err := service.Set(context.Background(), "k", "v2", nil); err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}

		setting, err := service.Get(context.Background(), "k")
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
		if setting.Value != "v2" {
			t.Errorf("esperava 'v2' após escrita, obteve '%s'", setting.Value)
		}
	})
}

func TestSettingsService_GetAll(t *testing.T) {
	t.Run("tabela não migrada resulta em mapa vazio", func(t *testing.T) {
		repo := newFakeSettingRepo()
		repo.tableMissing = true
		service := NewSettingsService(repo, nopLogger{})

		values, err := service.GetAll(context.Background())
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
		if len(values) != 0 {
			t.Errorf("esperava mapa vazio, obteve %v", values)
		}
	})
}

func TestSettingsService_SetComTabelaAusente(t *testing.T) {
	repo := newFakeSettingRepo()
	repo.tableMissing = true
	service := NewSettingsService(repo, nopLogger{})

	_, err := service.Set(context.Background(), "k", "v", nil)
	if err != errors.ErrSettingsUnavailable {
		t.Fatalf("esperava ErrSettingsUnavailable, obteve %v", err)
	}
}

func TestSettingsService_PaymentConfig(t *testing.T) {
	t.Run("chaves ausentes caem nos percentuais padrão", func(t *testing.T) {
		service := NewSettingsService(newFakeSettingRepo(), nopLogger{})

		config, err := service.GetPaymentConfig(context.Background())
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
		if config.PlatformFee != entities.DefaultPlatformFee {
			t.Errorf("esperava %.1f, obteve %.1f", entities.DefaultPlatformFee, config.PlatformFee)
		}
		if config.AgencyFee != entities.DefaultAgencyFee {
			t.Errorf("esperava %.1f, obteve %.1f", entities.DefaultAgencyFee, config.AgencyFee)
		}
	})

	t.Run("valor malformado cai no padrão, nunca NaN", func(t *testing.T) {
		repo := newFakeSettingRepo()
		service := NewSettingsService(repo, nopLogger{})

		if _, err := service.Set(context.Background(), entities.SettingPlatformFee, "abc", nil); err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}

		config, err := service.GetPaymentConfig(context.Background())
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
		if config.PlatformFee != entities.DefaultPlatformFee {
			t.Errorf("esperava fallback %.1f, obteve %v", entities.DefaultPlatformFee, config.PlatformFee)
		}
	})

	t.Run("atualização grava e devolve os novos percentuais", func(t *testing.T) {
		service := NewSettingsService(newFakeSettingRepo(), nopLogger{})

		config, err := service.UpdatePaymentConfig(context.Background(), 3.5, 10)
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
		if config.PlatformFee != 3.5 {
			t.Errorf("esperava 3.5, obteve %v", config.PlatformFee)
		}
		if config.AgencyFee != 10 {
			t.Errorf("esperava 10, obteve %v", config.AgencyFee)
		}
	})
}
