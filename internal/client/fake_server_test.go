package client_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/fivetwenty-io/stytch-mgmt/internal/client"
	"github.com/fivetwenty-io/stytch-mgmt/pkg/mgmt"
)

// fakeManagementServer is an in-memory management API covering projects,
// environments, secrets and redirect URLs. Updates merge into stored
// entities, redirect URL creation upserts, and deleted entities return 404.
type fakeManagementServer struct {
	mu sync.Mutex

	seq          int
	projects     map[string]map[string]interface{}
	environments map[string]map[string]interface{}
	secrets      map[string]mgmt.Secret
	redirectURLs map[string][]mgmt.URLType
}

func newFakeManagementServer(t *testing.T) *client.Client {
	t.Helper()

	fake := &fakeManagementServer{
		projects:     make(map[string]map[string]interface{}),
		environments: make(map[string]map[string]interface{}),
		secrets:      make(map[string]mgmt.Secret),
		redirectURLs: make(map[string][]mgmt.URLType),
	}

	server := httptest.NewTLSServer(fake)
	t.Cleanup(server.Close)

	return newTestClient(t, server)
}

func (s *fakeManagementServer) ServeHTTP(writer http.ResponseWriter, request *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	segments := strings.Split(strings.TrimPrefix(request.URL.EscapedPath(), "/"), "/")
	for i, segment := range segments {
		if unescaped, err := url.PathUnescape(segment); err == nil {
			segments[i] = unescaped
		}
	}

	if len(segments) < 2 || segments[0] != "v1" || segments[1] != "projects" {
		s.notFound(writer, "unknown route")

		return
	}

	body := map[string]interface{}{}
	if request.Body != nil {
		_ = json.NewDecoder(request.Body).Decode(&body)
	}

	switch {
	case len(segments) == 2:
		s.handleProjects(writer, request, body)
	case len(segments) == 3:
		s.handleProject(writer, request, segments[2], body)
	case len(segments) == 4 && segments[3] == "environments":
		s.handleEnvironments(writer, request, segments[2], body)
	case len(segments) == 5 && segments[3] == "environments":
		s.handleEnvironment(writer, request, segments[2]+"/"+segments[4], body)
	case len(segments) >= 6 && segments[5] == "secrets":
		s.handleSecrets(writer, request, segments)
	case len(segments) >= 6 && segments[5] == "redirect_urls":
		s.handleRedirectURLs(writer, request, segments, body)
	default:
		s.notFound(writer, "unknown route")
	}
}

func (s *fakeManagementServer) handleProjects(writer http.ResponseWriter, request *http.Request, body map[string]interface{}) {
	switch request.Method {
	case http.MethodGet:
		projects := make([]map[string]interface{}, 0, len(s.projects))
		for _, project := range s.projects {
			projects = append(projects, project)
		}

		s.respond(writer, http.StatusOK, map[string]interface{}{"projects": projects})
	case http.MethodPost:
		s.seq++

		slug, _ := body["project_slug"].(string)
		if slug == "" {
			slug = fmt.Sprintf("project-test-%d", s.seq)
		}

		project := map[string]interface{}{"project_slug": slug, "created_at": "2025-01-01T00:00:00Z"}
		merge(project, body)
		s.projects[slug] = project

		s.environments[slug+"/production"] = map[string]interface{}{
			"project_slug":     slug,
			"environment_slug": "production",
			"name":             "Production",
			"type":             "LIVE",
		}

		s.respond(writer, http.StatusOK, map[string]interface{}{"project": project})
	default:
		s.methodNotAllowed(writer)
	}
}

func (s *fakeManagementServer) handleProject(writer http.ResponseWriter, request *http.Request, slug string, body map[string]interface{}) {
	project, ok := s.projects[slug]
	if !ok {
		s.notFound(writer, "project not found")

		return
	}

	switch request.Method {
	case http.MethodGet:
		s.respond(writer, http.StatusOK, map[string]interface{}{"project": project})
	case http.MethodPatch:
		merge(project, body)
		s.respond(writer, http.StatusOK, map[string]interface{}{"project": project})
	case http.MethodDelete:
		delete(s.projects, slug)
		s.respond(writer, http.StatusOK, map[string]interface{}{})
	default:
		s.methodNotAllowed(writer)
	}
}

func (s *fakeManagementServer) handleEnvironments(writer http.ResponseWriter, request *http.Request, projectSlug string, body map[string]interface{}) {
	if _, ok := s.projects[projectSlug]; !ok {
		s.notFound(writer, "project not found")

		return
	}

	switch request.Method {
	case http.MethodGet:
		environments := []map[string]interface{}{}

		for key, environment := range s.environments {
			if strings.HasPrefix(key, projectSlug+"/") {
				environments = append(environments, environment)
			}
		}

		s.respond(writer, http.StatusOK, map[string]interface{}{"environments": environments})
	case http.MethodPost:
		s.seq++

		slug, _ := body["environment_slug"].(string)
		if slug == "" {
			slug = fmt.Sprintf("env-%d", s.seq)
		}

		environment := map[string]interface{}{
			"project_slug":                projectSlug,
			"environment_slug":            slug,
			"type":                        "TEST",
			"cross_org_passwords_enabled": false,
			"user_impersonation_enabled":  false,
		}
		merge(environment, body)
		s.environments[projectSlug+"/"+slug] = environment

		s.respond(writer, http.StatusOK, map[string]interface{}{"environment": environment})
	default:
		s.methodNotAllowed(writer)
	}
}

func (s *fakeManagementServer) handleEnvironment(writer http.ResponseWriter, request *http.Request, key string, body map[string]interface{}) {
	environment, ok := s.environments[key]
	if !ok {
		s.notFound(writer, "environment not found")

		return
	}

	switch request.Method {
	case http.MethodGet:
		s.respond(writer, http.StatusOK, map[string]interface{}{"environment": environment})
	case http.MethodPatch:
		merge(environment, body)
		s.respond(writer, http.StatusOK, map[string]interface{}{"environment": environment})
	case http.MethodDelete:
		delete(s.environments, key)
		s.respond(writer, http.StatusOK, map[string]interface{}{})
	default:
		s.methodNotAllowed(writer)
	}
}

func (s *fakeManagementServer) handleSecrets(writer http.ResponseWriter, request *http.Request, segments []string) {
	prefix := segments[2] + "/" + segments[4]

	if len(segments) == 6 {
		if request.Method != http.MethodPost {
			s.methodNotAllowed(writer)

			return
		}

		s.seq++
		secret := mgmt.Secret{
			SecretID:  fmt.Sprintf("secret-test-%d", s.seq),
			Secret:    fmt.Sprintf("secret-value-%04d", s.seq),
			CreatedAt: "2025-01-01T00:00:00Z",
		}
		s.secrets[prefix+"/"+secret.SecretID] = secret

		s.respond(writer, http.StatusOK, map[string]interface{}{"secret": secret})

		return
	}

	key := prefix + "/" + segments[6]

	secret, ok := s.secrets[key]
	if !ok {
		s.notFound(writer, "secret not found")

		return
	}

	switch request.Method {
	case http.MethodGet:
		s.respond(writer, http.StatusOK, map[string]interface{}{"secret": mgmt.MaskedSecret{
			SecretID:  secret.SecretID,
			LastFour:  secret.Secret[len(secret.Secret)-4:],
			CreatedAt: secret.CreatedAt,
		}})
	case http.MethodDelete:
		delete(s.secrets, key)
		s.respond(writer, http.StatusOK, map[string]interface{}{})
	default:
		s.methodNotAllowed(writer)
	}
}

func (s *fakeManagementServer) handleRedirectURLs(writer http.ResponseWriter, request *http.Request, segments []string, body map[string]interface{}) {
	prefix := segments[2] + "/" + segments[4] + "/"

	if len(segments) == 6 {
		if request.Method != http.MethodPost {
			s.methodNotAllowed(writer)

			return
		}

		redirectURL, _ := body["url"].(string)
		encoded, _ := json.Marshal(body["valid_types"])

		var validTypes []mgmt.URLType

		_ = json.Unmarshal(encoded, &validTypes)

		stored := s.redirectURLs[prefix+redirectURL]
		for _, validType := range validTypes {
			if !containsType(stored, validType.Type) {
				stored = append(stored, validType)
			}
		}

		s.redirectURLs[prefix+redirectURL] = stored

		s.respond(writer, http.StatusOK, map[string]interface{}{
			"redirect_url": mgmt.RedirectURL{URL: redirectURL, ValidTypes: stored},
		})

		return
	}

	redirectURL := segments[6]

	stored, ok := s.redirectURLs[prefix+redirectURL]
	if !ok {
		s.notFound(writer, "redirect url not found")

		return
	}

	switch request.Method {
	case http.MethodGet:
		s.respond(writer, http.StatusOK, map[string]interface{}{
			"redirect_url": mgmt.RedirectURL{URL: redirectURL, ValidTypes: stored},
		})
	case http.MethodDelete:
		delete(s.redirectURLs, prefix+redirectURL)
		s.respond(writer, http.StatusOK, map[string]interface{}{})
	default:
		s.methodNotAllowed(writer)
	}
}

func (s *fakeManagementServer) respond(writer http.ResponseWriter, status int, body map[string]interface{}) {
	s.seq++
	body["status_code"] = status
	body["request_id"] = fmt.Sprintf("request-id-test-%d", s.seq)

	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(status)
	_ = json.NewEncoder(writer).Encode(body)
}

func (s *fakeManagementServer) notFound(writer http.ResponseWriter, message string) {
	s.respond(writer, http.StatusNotFound, map[string]interface{}{
		"error_type":    "not_found",
		"error_message": message,
		"error_url":     "https://stytch.com/docs/workspace-management/api-errors#not_found",
	})
}

func (s *fakeManagementServer) methodNotAllowed(writer http.ResponseWriter) {
	s.respond(writer, http.StatusMethodNotAllowed, map[string]interface{}{
		"error_type":    "method_not_allowed",
		"error_message": "method not allowed",
	})
}

// merge copies every field of update onto entity.
func merge(entity, update map[string]interface{}) {
	for key, value := range update {
		entity[key] = value
	}
}

func containsType(validTypes []mgmt.URLType, redirectType mgmt.RedirectURLType) bool {
	for _, validType := range validTypes {
		if validType.Type == redirectType {
			return true
		}
	}

	return false
}
