package app

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/polkiloo/healthboard/internal/domain/errors"
	"github.com/polkiloo/healthboard/internal/domain/model"
	pkgAuth "github.com/polkiloo/healthboard/internal/pkg/auth"
	testhelpers "github.com/polkiloo/healthboard/internal/test"
	"github.com/polkiloo/healthboard/internal/usecase"
)

func newFacade() (*DashboardFacade, *testhelpers.ChartRepositoryStub, *testhelpers.HealthCheckerStub) {
	creds := pkgAuth.NewFixedCredentials("analyst", "s3cret")
	authUC := usecase.NewAuthUseCase(creds, pkgAuth.NewHMACStrategy("secret", pkgAuth.Options{}))

	charts := &testhelpers.ChartRepositoryStub{
		Items:  []model.Priority{{Name: "Low", Value: 10}, {Name: "High", Value: 90}},
		Points: []model.MarketSizePoint{{Year: 2026, Value: 2.31}, {Year: 2025, Value: 1.97}},
	}
	health := &testhelpers.HealthCheckerStub{}

	return NewDashboardFacade(authUC, usecase.NewChartUseCase(charts), usecase.NewHealthUseCase(health)), charts, health
}

func TestDashboardFacadeAuth(t *testing.T) {
	facade, _, _ := newFacade()

	if _, err := facade.Login(context.Background(), "analyst", "wrong"); !errors.Is(err, domainErrors.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials, got %v", err)
	}

	token, err := facade.Login(context.Background(), "analyst", "s3cret")
	if err != nil {
		t.Fatalf("login returned error: %v", err)
	}

	session, err := facade.ParseToken(token)
	if err != nil {
		t.Fatalf("parse token returned error: %v", err)
	}
	if session.Username != "analyst" {
		t.Fatalf("unexpected username %q", session.Username)
	}

	if _, err := facade.ParseToken(token + "x"); !errors.Is(err, domainErrors.ErrInvalidToken) {
		t.Fatalf("expected invalid token, got %v", err)
	}
	if facade.TokenStrategy() != "hmac" {
		t.Fatalf("unexpected strategy %q", facade.TokenStrategy())
	}
}

func TestDashboardFacadeCharts(t *testing.T) {
	facade, charts, _ := newFacade()

	items, err := facade.Priorities(context.Background())
	if err != nil {
		t.Fatalf("priorities returned error: %v", err)
	}
	if items[0].Name != "High" {
		t.Fatalf("expected highest priority first, got %+v", items)
	}

	points, err := facade.MarketSeries(context.Background())
	if err != nil {
		t.Fatalf("market series returned error: %v", err)
	}
	if points[0].Year != 2025 {
		t.Fatalf("expected earliest year first, got %+v", points)
	}

	charts.Err = errors.New("down")
	if _, err := facade.Priorities(context.Background()); !errors.Is(err, domainErrors.ErrDatastore) {
		t.Fatalf("expected datastore error, got %v", err)
	}
}

func TestDashboardFacadeHealth(t *testing.T) {
	facade, _, health := newFacade()
	if err := facade.CheckHealth(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	health.Err = errors.New("unreachable")
	if err := facade.CheckHealth(context.Background()); err == nil {
		t.Fatal("expected health error")
	}
}
