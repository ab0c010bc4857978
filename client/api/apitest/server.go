// Package apitest serves an in-memory console api for tests.
package apitest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/odpf/console/internal/models"
)

const (
	JobNameAvailable          = "is-job-name-available"
	DeleteJob                 = "mgmt.v1alpha1.JobService/DeleteJob"
	CreateConnection          = "mgmt.v1alpha1.ConnectionService/CreateConnection"
	CheckConnectionConfig     = "mgmt.v1alpha1.ConnectionService/CheckConnectionConfig"
	GetConnection             = "mgmt.v1alpha1.ConnectionService/GetConnection"
	IsConnectionNameAvailable = "mgmt.v1alpha1.ConnectionService/IsConnectionNameAvailable"
	DeleteConnection          = "mgmt.v1alpha1.ConnectionService/DeleteConnection"
	GetOnboardingConfig       = "mgmt.v1alpha1.UserAccountService/GetAccountOnboardingConfig"
	SetOnboardingConfig       = "mgmt.v1alpha1.UserAccountService/SetAccountOnboardingConfig"
)

// Failure is returned instead of the regular response of a procedure
type Failure struct {
	Status  int
	Code    string
	Message string
}

type job struct {
	accountID string
	name      string
}

type Server struct {
	*httptest.Server

	mu            sync.Mutex
	connections   map[string]*models.Connection
	jobs          map[string]job
	onboarding    map[string]*models.AccountOnboardingConfig
	checkResponse *models.CheckConnectionConfigResponse
	failures      map[string]Failure
	calls         map[string]int
	lastHeaders   http.Header
	lastCheck     *models.ConnectionConfig
}

// NewServer starts the fake api, callers must Close it
func NewServer() *Server {
	s := &Server{
		connections:   map[string]*models.Connection{},
		jobs:          map[string]job{},
		onboarding:    map[string]*models.AccountOnboardingConfig{},
		checkResponse: &models.CheckConnectionConfigResponse{IsConnected: true},
		failures:      map[string]Failure{},
		calls:         map[string]int{},
	}

	r := mux.NewRouter()
	r.HandleFunc("/api/jobs/is-job-name-available", s.handleJobNameAvailable).Methods(http.MethodGet)
	r.HandleFunc("/{service}/{method}", s.handleProcedure).Methods(http.MethodPost)
	s.Server = httptest.NewServer(r)
	return s
}

func (s *Server) AddConnection(conn *models.Connection) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.connections[conn.ID] = conn
}

func (s *Server) AddJob(accountID, id, name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs[id] = job{accountID: accountID, name: name}
}

func (s *Server) SetOnboarding(accountID string, cfg *models.AccountOnboardingConfig) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onboarding[accountID] = cfg
}

func (s *Server) Onboarding(accountID string) *models.AccountOnboardingConfig {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.onboarding[accountID]
}

func (s *Server) SetCheckResponse(resp *models.CheckConnectionConfigResponse) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.checkResponse = resp
}

// LastCheckedConfig returns the config of the latest CheckConnectionConfig call
func (s *Server) LastCheckedConfig() *models.ConnectionConfig {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastCheck
}

func (s *Server) FailWith(procedure string, f Failure) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[procedure] = f
}

func (s *Server) Calls(procedure string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[procedure]
}

func (s *Server) LastHeaders() http.Header {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastHeaders.Clone()
}

func (s *Server) Connection(id string) *models.Connection {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.connections[id]
}

func (s *Server) HasJob(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.jobs[id]
	return ok
}

// record counts the call and reports a configured failure, if any
func (s *Server) record(procedure string, r *http.Request) (Failure, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls[procedure]++
	s.lastHeaders = r.Header.Clone()
	f, ok := s.failures[procedure]
	return f, ok
}

func (s *Server) handleJobNameAvailable(w http.ResponseWriter, r *http.Request) {
	if f, ok := s.record(JobNameAvailable, r); ok {
		writeFailure(w, f)
		return
	}
	name := r.URL.Query().Get("name")
	accountID := r.URL.Query().Get("accountId")

	s.mu.Lock()
	available := true
	for _, j := range s.jobs {
		if j.accountID == accountID && j.name == name {
			available = false
			break
		}
	}
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, &models.IsJobNameAvailableResponse{IsAvailable: available})
}

func (s *Server) handleProcedure(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	procedure := vars["service"] + "/" + vars["method"]
	if f, ok := s.record(procedure, r); ok {
		writeFailure(w, f)
		return
	}

	switch procedure {
	case DeleteJob:
		var req models.DeleteJobRequest
		if !decode(w, r, &req) {
			return
		}
		s.mu.Lock()
		_, ok := s.jobs[req.ID]
		delete(s.jobs, req.ID)
		s.mu.Unlock()
		if !ok {
			writeFailure(w, Failure{Status: http.StatusNotFound, Code: "not_found", Message: "job not found"})
			return
		}
		writeJSON(w, http.StatusOK, struct{}{})
	case CreateConnection:
		var req models.CreateConnectionRequest
		if !decode(w, r, &req) {
			return
		}
		s.mu.Lock()
		if s.connectionNameTaken(req.AccountID, req.Name) {
			s.mu.Unlock()
			writeFailure(w, Failure{Status: http.StatusConflict, Code: "already_exists", Message: "connection name already taken"})
			return
		}
		conn := &models.Connection{
			ID:               uuid.New().String(),
			Name:             req.Name,
			AccountID:        req.AccountID,
			ConnectionConfig: req.ConnectionConfig,
		}
		s.connections[conn.ID] = conn
		s.mu.Unlock()
		writeJSON(w, http.StatusOK, &models.CreateConnectionResponse{Connection: conn})
	case CheckConnectionConfig:
		var req models.CheckConnectionConfigRequest
		if !decode(w, r, &req) {
			return
		}
		s.mu.Lock()
		s.lastCheck = req.ConnectionConfig
		resp := s.checkResponse
		s.mu.Unlock()
		writeJSON(w, http.StatusOK, resp)
	case GetConnection:
		var req models.GetConnectionRequest
		if !decode(w, r, &req) {
			return
		}
		conn := s.Connection(req.ID)
		if conn == nil {
			writeFailure(w, Failure{Status: http.StatusNotFound, Code: "not_found", Message: "connection not found"})
			return
		}
		writeJSON(w, http.StatusOK, &models.GetConnectionResponse{Connection: conn})
	case IsConnectionNameAvailable:
		var req models.IsConnectionNameAvailableRequest
		if !decode(w, r, &req) {
			return
		}
		s.mu.Lock()
		taken := s.connectionNameTaken(req.AccountID, req.ConnectionName)
		s.mu.Unlock()
		writeJSON(w, http.StatusOK, &models.IsConnectionNameAvailableResponse{IsAvailable: !taken})
	case DeleteConnection:
		var req models.DeleteConnectionRequest
		if !decode(w, r, &req) {
			return
		}
		s.mu.Lock()
		_, ok := s.connections[req.ID]
		delete(s.connections, req.ID)
		s.mu.Unlock()
		if !ok {
			writeFailure(w, Failure{Status: http.StatusNotFound, Code: "not_found", Message: "connection not found"})
			return
		}
		writeJSON(w, http.StatusOK, struct{}{})
	case GetOnboardingConfig:
		var req models.GetAccountOnboardingConfigRequest
		if !decode(w, r, &req) {
			return
		}
		writeJSON(w, http.StatusOK, &models.GetAccountOnboardingConfigResponse{Config: s.Onboarding(req.AccountID)})
	case SetOnboardingConfig:
		var req models.SetAccountOnboardingConfigRequest
		if !decode(w, r, &req) {
			return
		}
		s.SetOnboarding(req.AccountID, req.Config)
		writeJSON(w, http.StatusOK, &models.SetAccountOnboardingConfigResponse{Config: req.Config})
	default:
		writeFailure(w, Failure{Status: http.StatusNotFound, Code: "unimplemented", Message: procedure + " is not implemented"})
	}
}

func (s *Server) connectionNameTaken(accountID, name string) bool {
	for _, c := range s.connections {
		if c.AccountID == accountID && c.Name == name {
			return true
		}
	}
	return false
}

func decode(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeFailure(w, Failure{Status: http.StatusBadRequest, Code: "invalid_argument", Message: err.Error()})
		return false
	}
	return true
}

func writeFailure(w http.ResponseWriter, f Failure) {
	status := f.Status
	if status == 0 {
		status = http.StatusInternalServerError
	}
	writeJSON(w, status, map[string]string{"code": f.Code, "message": f.Message})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
