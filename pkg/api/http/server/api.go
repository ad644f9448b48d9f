package server

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/voidshard/rasterflow/internal/utils"
	"github.com/voidshard/rasterflow/pkg/api"
	"github.com/voidshard/rasterflow/pkg/api/http/common"
	"github.com/voidshard/rasterflow/pkg/structs"
)

const (
	wait = 30 * time.Second

	// uploads larger than this spill from memory to temp files while the
	// multipart form is parsed
	maxUploadMemory = 32 << 20
)

type Server struct {
	addr       string
	tlscfg     *tls.Config
	debug      bool
	svc        api.API
	exit       chan os.Signal
	httpserver *http.Server
}

func NewServer(addr string, tlscfg *tls.Config, debug bool) *Server {
	return &Server{
		addr:   addr,
		tlscfg: tlscfg,
		debug:  debug,
		exit:   make(chan os.Signal, 1),
	}
}

func (s *Server) ServeForever(svc api.API) error {
	s.svc = svc
	router := s.routes()

	// map frontends poll us straight from the browser
	handler := cors.AllowAll().Handler(router)

	s.httpserver = &http.Server{
		Handler:      handler,
		Addr:         s.addr,
		WriteTimeout: 60 * time.Second,
		ReadTimeout:  15 * time.Second,
		TLSConfig:    s.tlscfg,
	}

	go func() {
		log.Println("Listening on", s.httpserver.Addr)
		var err error
		if s.tlscfg != nil {
			err = s.httpserver.ListenAndServeTLS("", "")
		} else {
			err = s.httpserver.ListenAndServe()
		}
		if err != nil {
			log.Println(err)
		}
	}()

	signal.Notify(s.exit, os.Interrupt)
	<-s.exit

	ctx, cancel := context.WithTimeout(context.Background(), wait)
	defer cancel()
	return s.httpserver.Shutdown(ctx)
}

func (s *Server) routes() *mux.Router {
	router := mux.NewRouter()
	router.HandleFunc("/healthz", s.Health).Methods(http.MethodGet)
	router.HandleFunc(common.API_RASTERS, s.Upload).Methods(http.MethodPost)
	router.HandleFunc(common.API_RASTERS_BATCH, s.UploadBatch).Methods(http.MethodPost)
	router.HandleFunc(common.API_STATUS, s.Status).Methods(http.MethodGet)
	router.HandleFunc(common.API_METADATA, s.Metadata).Methods(http.MethodGet)
	router.HandleFunc(common.API_DOWNLOAD, s.Download).Methods(http.MethodGet)
	router.HandleFunc(common.API_TILE, s.Tile).Methods(http.MethodGet)

	if s.debug {
		log.Println("Debug enabled, adding per-request logging middleware")
		router.Use(loggingMiddleware)
	}
	return router
}

func (s *Server) Upload(w http.ResponseWriter, r *http.Request) {
	file, header, err := r.FormFile(common.FieldFile)
	if err != nil {
		http.Error(w, "expected multipart file field \"file\"", http.StatusBadRequest)
		return
	}
	defer file.Close()

	ack, err := s.svc.Upload(header.Filename, file)
	if err != nil {
		http.Error(w, err.Error(), mapError(err))
		return
	}

	writeJson(w, http.StatusAccepted, ack)
}

func (s *Server) UploadBatch(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	headers := r.MultipartForm.File[common.FieldFiles]
	if len(headers) == 0 {
		http.Error(w, "expected multipart file field \"files\"", http.StatusBadRequest)
		return
	}

	batch := []*structs.UploadFile{}
	for _, h := range headers {
		f, err := h.Open()
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		defer f.Close()
		batch = append(batch, &structs.UploadFile{Filename: h.Filename, Data: f})
	}

	resp, err := s.svc.UploadBatch(batch)
	if err != nil {
		http.Error(w, err.Error(), mapError(err))
		return
	}

	writeJson(w, http.StatusAccepted, resp)
}

func (s *Server) Status(w http.ResponseWriter, r *http.Request) {
	id, ok := rasterID(w, r)
	if !ok {
		return
	}

	status, err := s.svc.Status(id)
	if err != nil {
		http.Error(w, err.Error(), mapError(err))
		return
	}

	writeJson(w, http.StatusOK, status)
}

func (s *Server) Metadata(w http.ResponseWriter, r *http.Request) {
	id, ok := rasterID(w, r)
	if !ok {
		return
	}

	md, err := s.svc.Metadata(id)
	if err != nil {
		http.Error(w, err.Error(), mapError(err))
		return
	}

	writeJson(w, http.StatusOK, md)
}

func (s *Server) Download(w http.ResponseWriter, r *http.Request) {
	id, ok := rasterID(w, r)
	if !ok {
		return
	}

	path, err := s.svc.Download(id)
	if err != nil {
		http.Error(w, err.Error(), mapError(err))
		return
	}

	w.Header().Set("Content-Type", "image/tiff")
	w.Header().Set("Content-Disposition", "attachment; filename=\"reprojected.tif\"")
	http.ServeFile(w, r, path)
}

func (s *Server) Tile(w http.ResponseWriter, r *http.Request) {
	id, ok := rasterID(w, r)
	if !ok {
		return
	}
	vars := mux.Vars(r)
	// the route pattern guarantees these parse
	z, _ := strconv.Atoi(vars["z"])
	x, _ := strconv.Atoi(vars["x"])
	y, _ := strconv.Atoi(vars["y"])

	path, err := s.svc.Tile(id, z, x, y)
	if err != nil {
		http.Error(w, err.Error(), mapError(err))
		return
	}

	w.Header().Set("Content-Type", "image/png")
	http.ServeFile(w, r, path)
}

func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	json.NewEncoder(w).Encode(map[string]bool{"ok": true})
}

func (s *Server) Close() error {
	s.exit <- os.Interrupt
	return nil
}

// rasterID pulls the raster id out of the route. Malformed ids cannot have
// been issued by us, so they read the same as unknown ones.
func rasterID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := mux.Vars(r)["id"]
	if !utils.IsValidID(id) {
		http.Error(w, "raster id not found", http.StatusNotFound)
		return "", false
	}
	return id, true
}
