package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"vpcd/internal/api"
	"vpcd/internal/config"
	platformec2 "vpcd/internal/platform/ec2"
	"vpcd/internal/provisioning"
)

const shutdownTimeout = 10 * time.Second

// Serve handles the serve command. It runs the HTTP API until the context
// is cancelled, then shuts down gracefully.
func Serve(ctx context.Context, configPath, listenAddr string) error {
	d, err := buildDeps(ctx, configPath)
	if err != nil {
		return err
	}
	if listenAddr == "" {
		listenAddr = d.cfg.ListenAddr
	}

	server := NewServer(d.cfg, d.provisioner, d.store)
	httpServer := &http.Server{
		Addr:              listenAddr,
		Handler:           server.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("HTTP API listening on %s", listenAddr)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	log.Println("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return httpServer.Shutdown(shutdownCtx)
}

// Server exposes the provisioning operations over HTTP.
type Server struct {
	cfg         *config.Config
	provisioner NetworkProvisioner
	store       MetadataStore
}

// NewServer creates an HTTP API server.
func NewServer(cfg *config.Config, provisioner NetworkProvisioner, store MetadataStore) *Server {
	return &Server{cfg: cfg, provisioner: provisioner, store: store}
}

// Router builds the route table.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(instrument)

	r.HandleFunc("/vpcs", s.handleCreate).Methods(http.MethodPost)
	r.HandleFunc("/vpcs", s.handleList).Methods(http.MethodGet)
	r.HandleFunc("/vpcs/{id}", s.handleGet).Methods(http.MethodGet)
	r.HandleFunc("/vpcs/{id}", s.handleDelete).Methods(http.MethodDelete)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	r.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)

	return r
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	var body api.CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		api.WriteValidationError(w, "request body must be valid JSON", nil)
		return
	}

	req, err := api.ValidateCreateRequest(body.Name, body.CIDRBlock, s.cfg.DefaultCIDR)
	if err != nil {
		api.WriteValidationError(w, err.Error(), nil)
		return
	}

	requestID := newRequestID()
	record, err := s.provisioner.Create(r.Context(), req.Name, req.CIDRBlock, requestID)
	countOperation("create", err)
	if err != nil {
		s.writeProvisioningError(w, err)
		return
	}

	if err := s.store.Save(r.Context(), record); err != nil {
		api.WriteInternalError(w, fmt.Errorf("VPC %s created but metadata save failed: %w", record.VPCID, err))
		return
	}

	api.WriteSuccess(w, http.StatusCreated, record, "VPC created")
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	records, err := s.store.List(r.Context(), 100)
	if err != nil {
		api.WriteInternalError(w, err)
		return
	}
	api.WriteSuccess(w, http.StatusOK, records, "")
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	vpcID := mux.Vars(r)["id"]
	if err := api.ValidateVPCID(vpcID); err != nil {
		api.WriteValidationError(w, err.Error(), nil)
		return
	}

	record, err := s.store.Get(r.Context(), vpcID)
	if err != nil {
		api.WriteInternalError(w, err)
		return
	}
	if record == nil {
		api.WriteNotFound(w, "VPC", vpcID)
		return
	}
	api.WriteSuccess(w, http.StatusOK, record, "")
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	vpcID := mux.Vars(r)["id"]
	if err := api.ValidateVPCID(vpcID); err != nil {
		api.WriteValidationError(w, err.Error(), nil)
		return
	}

	record, err := s.store.Get(r.Context(), vpcID)
	if err != nil {
		api.WriteInternalError(w, err)
		return
	}
	if record == nil {
		api.WriteNotFound(w, "VPC", vpcID)
		return
	}

	if _, err := s.store.UpdateStatus(r.Context(), vpcID, provisioning.StatusDeleting); err != nil {
		api.WriteInternalError(w, err)
		return
	}

	deletion, err := s.provisioner.Delete(r.Context(), vpcID)
	countOperation("delete", err)
	if err != nil {
		s.writeProvisioningError(w, err)
		return
	}

	if _, err := s.store.Delete(r.Context(), vpcID); err != nil {
		api.WriteInternalError(w, fmt.Errorf("VPC %s deleted but metadata removal failed: %w", vpcID, err))
		return
	}

	api.WriteSuccess(w, http.StatusOK, deletion, "VPC deleted")
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	api.WriteSuccess(w, http.StatusOK, map[string]string{"status": "ok"}, "")
}

// writeProvisioningError maps provider and validation failures to HTTP
// responses. Client-correctable conditions get a 400, missing resources a
// 404, everything else a 500.
func (s *Server) writeProvisioningError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, config.ErrInvalidCIDR), errors.Is(err, config.ErrMalformedCIDR):
		api.WriteValidationError(w, err.Error(), nil)
	case platformec2.IsLimitExceeded(err):
		api.WriteValidationError(w, "VPC limit exceeded in this region", nil)
	case platformec2.IsInvalidRange(err):
		api.WriteValidationError(w, "the requested CIDR range is not allowed", nil)
	case platformec2.IsDependencyViolation(err):
		api.WriteValidationError(w, "the VPC still has dependencies that could not be removed", nil)
	case platformec2.IsNotFound(err):
		api.WriteError(w, http.StatusNotFound, api.CodeNotFound, err.Error(), nil)
	default:
		api.WriteInternalError(w, err)
	}
}
