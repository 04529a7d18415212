package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/duofinder/duo-services/internal/adsvc/apperr"
	"github.com/duofinder/duo-services/internal/adsvc/models"
	"github.com/duofinder/duo-services/internal/adsvc/store"
	"github.com/duofinder/duo-services/internal/adsvc/validate"
)

// fakeAdStore keeps ads in memory, newest first like the real query.
type fakeAdStore struct {
	ads       []models.Ad
	createErr error
	listErr   error
}

func (f *fakeAdStore) Create(ctx context.Context, ad models.Ad) (*models.Ad, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	ad.CreatedAt = time.Now()
	f.ads = append([]models.Ad{ad}, f.ads...)
	return &ad, nil
}

func (f *fakeAdStore) ListByGame(ctx context.Context, gameID string) ([]models.Ad, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := []models.Ad{}
	for _, a := range f.ads {
		if a.GameID == gameID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAdStore) GetDiscord(ctx context.Context, adID string) (string, error) {
	for _, a := range f.ads {
		if a.ID == adID {
			return a.Discord, nil
		}
	}
	return "", store.ErrNoRows
}

func strptr(s string) *string { return &s }
func intptr(i int) *int       { return &i }
func boolptr(b bool) *bool    { return &b }

func newCreateReq() *validate.CreateAdRequest {
	days := []int{5, 6, 1}
	return &validate.CreateAdRequest{
		Name:            strptr("player one"),
		YearsPlaying:    intptr(3),
		Discord:         strptr("player#1234"),
		WeekDays:        &days,
		HourStart:       strptr("08:00"),
		HourEnd:         strptr("10:30"),
		UseVoiceChannel: boolptr(true),
	}
}

func TestCreateAdEncodesStoredForm(t *testing.T) {
	fake := &fakeAdStore{}
	svc := NewAdService(fake, EmptyResultError)

	ad, err := svc.CreateAd(context.Background(), "game-1", newCreateReq())
	if err != nil {
		t.Fatalf("CreateAd failed: %v", err)
	}

	if ad.ID == "" {
		t.Errorf("expected generated id")
	}
	if ad.WeekDays != "5,6,1" {
		t.Errorf("weekDays stored as %q, want %q", ad.WeekDays, "5,6,1")
	}
	if ad.HourStart != 480 || ad.HourEnd != 630 {
		t.Errorf("hours stored as %d/%d, want 480/630", ad.HourStart, ad.HourEnd)
	}
}

func TestCreateThenListRoundTrips(t *testing.T) {
	fake := &fakeAdStore{}
	svc := NewAdService(fake, EmptyResultError)

	if _, err := svc.CreateAd(context.Background(), "game-1", newCreateReq()); err != nil {
		t.Fatalf("CreateAd failed: %v", err)
	}

	ads, err := svc.ListAds(context.Background(), "game-1")
	if err != nil {
		t.Fatalf("ListAds failed: %v", err)
	}
	if len(ads) != 1 {
		t.Fatalf("want 1 ad, got %d", len(ads))
	}

	got := ads[0]
	if got.HourStart != "08:00" || got.HourEnd != "10:30" {
		t.Errorf("hours decoded as %q/%q, want 08:00/10:30", got.HourStart, got.HourEnd)
	}
	if len(got.WeekDays) != 3 || got.WeekDays[0] != 5 || got.WeekDays[1] != 6 || got.WeekDays[2] != 1 {
		t.Errorf("weekDays decoded as %v, want [5 6 1]", got.WeekDays)
	}
}

func TestCreateAdBadHour(t *testing.T) {
	svc := NewAdService(&fakeAdStore{}, EmptyResultError)

	req := newCreateReq()
	req.HourStart = strptr("25:00")
	_, err := svc.CreateAd(context.Background(), "game-1", req)
	e := apperr.As(err)
	if e == nil || e.Kind != apperr.KindValidation {
		t.Fatalf("want validation error, got %v", err)
	}
	if _, ok := e.Fields["hourStart"]; !ok {
		t.Errorf("want hourStart flagged, got %v", e.Fields)
	}
}

func TestListAdsNewestFirst(t *testing.T) {
	fake := &fakeAdStore{ads: []models.Ad{
		{ID: "b", GameID: "game-1", WeekDays: "1", HourStart: 60, HourEnd: 120, CreatedAt: time.Now()},
		{ID: "a", GameID: "game-1", WeekDays: "2", HourStart: 60, HourEnd: 120, CreatedAt: time.Now().Add(-time.Hour)},
	}}
	svc := NewAdService(fake, EmptyResultError)

	ads, err := svc.ListAds(context.Background(), "game-1")
	if err != nil {
		t.Fatalf("ListAds failed: %v", err)
	}
	if len(ads) != 2 || ads[0].ID != "b" || ads[1].ID != "a" {
		t.Errorf("store order not preserved: %+v", ads)
	}
}

func TestListAdsEmptyPolicies(t *testing.T) {
	errSvc := NewAdService(&fakeAdStore{}, EmptyResultError)
	_, err := errSvc.ListAds(context.Background(), "game-1")
	e := apperr.As(err)
	if e == nil || e.Kind != apperr.KindEmptyResult || e.StatusCode != 400 {
		t.Fatalf("want 400 empty result, got %v", err)
	}

	okSvc := NewAdService(&fakeAdStore{}, EmptyResultOK)
	ads, err := okSvc.ListAds(context.Background(), "game-1")
	if err != nil {
		t.Fatalf("empty policy should succeed, got %v", err)
	}
	if len(ads) != 0 {
		t.Errorf("want empty list, got %v", ads)
	}
}

func TestGetContact(t *testing.T) {
	fake := &fakeAdStore{ads: []models.Ad{{ID: "ad-1", Discord: "player#1234"}}}
	svc := NewAdService(fake, EmptyResultError)

	discord, err := svc.GetContact(context.Background(), "ad-1")
	if err != nil {
		t.Fatalf("GetContact failed: %v", err)
	}
	if discord != "player#1234" {
		t.Errorf("got %q", discord)
	}
}

func TestGetContactNotFound(t *testing.T) {
	svc := NewAdService(&fakeAdStore{}, EmptyResultError)

	_, err := svc.GetContact(context.Background(), "missing")
	e := apperr.As(err)
	if e == nil || e.Kind != apperr.KindNotFound {
		t.Fatalf("want not-found error, got %v", err)
	}
	if e.StatusCode != 400 {
		t.Errorf("want status 400, got %d", e.StatusCode)
	}
}

func TestListAdsStoreFailureIsUnclassified(t *testing.T) {
	svc := NewAdService(&fakeAdStore{listErr: errors.New("connection refused")}, EmptyResultError)

	_, err := svc.ListAds(context.Background(), "game-1")
	if err == nil {
		t.Fatal("want error")
	}
	if apperr.As(err) != nil {
		t.Errorf("infrastructure failure must stay unclassified, got %v", err)
	}
}
