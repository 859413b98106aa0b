package api

import (
	"context"
	"errors"
	"image/png"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/matt-g-everett/reeftx/stream"
)

// Api serves a live preview of the most recent frame.
type Api struct {
	mu    sync.RWMutex
	frame *stream.Frame
}

// NewApi creates an Api with no frame yet.
func NewApi() *Api {
	a := new(Api)
	return a
}

// Present keeps f for the preview. Frames are not modified once presented.
func (a *Api) Present(f *stream.Frame) error {
	a.mu.Lock()
	a.frame = f
	a.mu.Unlock()
	return nil
}

// Handler routes /frame.png.
func (a *Api) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/frame.png", a.serveFrame)
	return mux
}

func (a *Api) serveFrame(w http.ResponseWriter, r *http.Request) {
	a.mu.RLock()
	f := a.frame
	a.mu.RUnlock()
	if f == nil {
		http.Error(w, "no frame rendered yet", http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	if err := png.Encode(w, f.Image()); err != nil {
		log.Printf("preview encode: %v", err)
	}
}

// Serve listens on addr until ctx is done.
func (a *Api) Serve(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: a.Handler(), ReadHeaderTimeout: 5 * time.Second}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	log.Printf("Preview listening on %s", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
