// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package openfga

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/fisioapp/clinic-service/internal/logging"
	"github.com/fisioapp/clinic-service/internal/monitoring"
	"github.com/fisioapp/clinic-service/internal/tracing"
)

const (
	storeID = "01HVMMBCMGZNT3SED4Z17ECXCA"
	modelID = "01HVMMBD123ZZN3SED4Z17ECXC"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	u, _ := url.Parse(srv.URL)
	logger := logging.NewNoopLogger()

	return NewClient(NewConfig(u.Scheme, u.Host, storeID, "token", modelID, false, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger))
}

func TestClientCheck(t *testing.T) {
	for _, allowed := range []bool{true, false} {
		var body map[string]interface{}

		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/stores/"+storeID+"/check" {
				t.Errorf("unexpected path %s", r.URL.Path)
			}
			if r.Header.Get("Authorization") != "Bearer token" {
				t.Errorf("expected api token, got %q", r.Header.Get("Authorization"))
			}
			_ = json.NewDecoder(r.Body).Decode(&body)

			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(map[string]interface{}{"allowed": allowed})
		})

		got, err := c.Check(
			context.Background(),
			"user:u1", "can_view", "patient:p1",
			*NewTuple("user:u1", "therapist", "patient:p1"),
		)

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if got != allowed {
			t.Errorf("expected %v, got %v", allowed, got)
		}

		key, _ := body["tuple_key"].(map[string]interface{})
		if key["user"] != "user:u1" || key["relation"] != "can_view" || key["object"] != "patient:p1" {
			t.Errorf("unexpected tuple key %v", body["tuple_key"])
		}

		if _, ok := body["contextual_tuples"]; !ok {
			t.Error("expected contextual tuples to be sent")
		}
	}
}

func TestClientWriteTuplesEmpty(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected request %s", r.URL.Path)
	})

	if err := c.WriteTuples(context.Background()); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	if err := c.DeleteTuples(context.Background()); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestConfigApiURL(t *testing.T) {
	if got := (&Config{ApiHost: "fga:8080"}).ApiURL(); got != "https://fga:8080" {
		t.Errorf("unexpected url %s", got)
	}

	if got := (&Config{ApiScheme: "http", ApiHost: "fga:8080"}).ApiURL(); got != "http://fga:8080" {
		t.Errorf("unexpected url %s", got)
	}
}

func TestNoopClient(t *testing.T) {
	logger := logging.NewNoopLogger()
	c := NewNoopClient(tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger)

	allowed, err := c.Check(context.Background(), "user:u1", "can_view", "patient:p1")
	if !allowed || err != nil {
		t.Errorf("expected noop client to allow, got %v, %v", allowed, err)
	}

	r, err := c.ReadTuples(context.Background(), "", "", "patient:p1", "")
	if err != nil || len(r.Tuples) != 0 {
		t.Errorf("expected empty read, got %v, %v", r, err)
	}
}
