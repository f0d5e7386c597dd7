package statsapi

import (
	"context"
	"errors"
	"net/http"
	"testing"
)

const sportsBody = `{
	"sports": [
		{ "id": 1, "code": "mlb", "link": "/api/v1/sports/1", "name": "Major League Baseball", "abbreviation": "MLB", "sortOrder": 11, "activeStatus": true },
		{ "id": 11, "code": "aaa", "link": "/api/v1/sports/11", "name": "Triple-A", "abbreviation": "AAA", "sortOrder": 101, "activeStatus": true }
	]
}`

func TestSportsMapsListing(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		if req.URL.Path != "/api/v1/sports" {
			t.Fatalf("expected sports path, got %s", req.URL.Path)
		}
		return jsonResponse(http.StatusOK, sportsBody), nil
	})

	client := newTestClient(rt)

	table, err := client.Sports(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(table) != 2 {
		t.Fatalf("expected 2 sports, got %d", len(table))
	}
	if table[0].ID != 1 || table[0].Abbreviation != "MLB" || !table[0].ActiveStatus {
		t.Fatalf("unexpected first sport %+v", table[0])
	}
}

func TestSportsMissingKeyIsShapeError(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, `{"copyright": "x"}`), nil
	})

	client := newTestClient(rt)

	_, err := client.Sports(context.Background())
	if err == nil {
		t.Fatalf("expected shape error")
	}

	var shapeErr *ShapeError
	if !errors.As(err, &shapeErr) || shapeErr.Key != "sports" {
		t.Fatalf("expected shape error naming the sports key, got %v", err)
	}
}

func TestSportsEmptyListingIsEmptyTable(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, `{"sports": []}`), nil
	})

	client := newTestClient(rt)

	table, err := client.Sports(context.Background())
	if err != nil {
		t.Fatalf("expected no error for empty listing, got %v", err)
	}
	if table == nil || len(table) != 0 {
		t.Fatalf("expected empty non-nil table, got %#v", table)
	}
}

func TestSportByID(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, sportsBody), nil
	})

	client := newTestClient(rt)

	sport, err := client.SportByID(context.Background(), 11)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if sport == nil || sport.Name != "Triple-A" {
		t.Fatalf("unexpected sport %+v", sport)
	}

	missing, err := client.SportByID(context.Background(), 999)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if missing != nil {
		t.Fatalf("expected nil for unknown id, got %+v", missing)
	}
}

func TestGameTypesDecodesBareArray(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		if req.URL.Path != "/api/v1/gameTypes" {
			t.Fatalf("expected gameTypes path, got %s", req.URL.Path)
		}
		body := `[
			{ "id": "R", "description": "Regular Season" },
			{ "id": "F", "description": "Wild Card Game" }
		]`
		return jsonResponse(http.StatusOK, body), nil
	})

	client := newTestClient(rt)

	types, err := client.GameTypes(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(types) != 2 {
		t.Fatalf("expected 2 game types, got %d", len(types))
	}
	if types[0].ID != "R" || types[0].Description != "Regular Season" {
		t.Fatalf("unexpected game type %+v", types[0])
	}
}
