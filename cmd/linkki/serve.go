/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package main

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"dirpx.dev/linkki"
	"dirpx.dev/linkki/binding"
	"dirpx.dev/linkki/internal/demo"
	"dirpx.dev/linkki/remote"
)

//go:embed index.html
var index []byte

const shutdownTimeout = 5 * time.Second

func newServeCmd() *cobra.Command {
	var addr string
	var countries []string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "serve shows the person form in the browser.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			hub := remote.NewHub(remote.WithLogger(slog.Default()))
			if _, err := newDemoSession(hub, countries); err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return serve(ctx, addr, newRouter(hub))
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "localhost:8080", "listen address")
	cmd.Flags().StringSliceVar(&countries, "countries", []string{"DE", "FR", "NL"}, "selectable countries; empty for a text field")
	return cmd
}

// newDemoSession binds a person form whose widgets are mirrored by hub.
func newDemoSession(hub *remote.Hub, countries []string) (*demo.Session, error) {
	var s *demo.Session
	err := hub.Do(func() error {
		var err error
		s, err = demo.NewSession(linkki.Reader(), demo.NewPersonPmo(&demo.Person{}, countries...),
			binding.WithUiUpdateObserver(hub),
			binding.WithErrorHandler(hub.HandleError))
		return err
	})
	if err != nil {
		return nil, err
	}
	hub.Mount(s.Layout())
	return s, nil
}

// newRouter routes the page, the current tree and the websocket.
func newRouter(hub *remote.Hub) *mux.Router {
	r := mux.NewRouter()
	r.Handle("/ws", hub)
	r.HandleFunc("/tree", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(hub.Snapshot()); err != nil {
			slog.Warn("encode tree", "err", err)
		}
	}).Methods(http.MethodGet)
	r.HandleFunc("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write(index)
	}).Methods(http.MethodGet)
	return r
}

// serve runs the server until ctx is done.
func serve(ctx context.Context, addr string, h http.Handler) error {
	srv := &http.Server{Addr: addr, Handler: h, ReadHeaderTimeout: 10 * time.Second}
	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		slog.Info("serving", "addr", addr)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	group.Go(func() error {
		<-ctx.Done()
		shutdown, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdown)
	})
	return group.Wait()
}
