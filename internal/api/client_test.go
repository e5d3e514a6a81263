package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"golang.org/x/oauth2"

	"tido/internal/api"
	"tido/internal/service"
)

func newClient(t *testing.T, handler http.Handler, token string) (*api.Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	return api.New(srv.URL, ts), srv
}

func TestClient_ListTasksAttachesBearer(t *testing.T) {
	var gotAuth, gotDate string
	client, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotDate = r.URL.Query().Get("date")
		json.NewEncoder(w).Encode([]service.Task{{ID: "1", Title: "Buy milk", Date: "2025-07-11"}})
	}), "tok123")

	tasks, err := client.ListTasks(context.Background(), "2025-07-11")
	if err != nil {
		t.Fatalf("ListTasks failed: %v", err)
	}
	if gotAuth != "Bearer tok123" {
		t.Errorf("Authorization = %q, want Bearer tok123", gotAuth)
	}
	if gotDate != "2025-07-11" {
		t.Errorf("date query = %q, want 2025-07-11", gotDate)
	}
	if len(tasks) != 1 || tasks[0].ID != "1" {
		t.Errorf("unexpected tasks: %+v", tasks)
	}
}

func TestClient_ListTasksOmitsEmptyDate(t *testing.T) {
	var hadDate bool
	client, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, hadDate = r.URL.Query()["date"]
		w.Write([]byte("[]"))
	}), "tok")

	if _, err := client.ListTasks(context.Background(), ""); err != nil {
		t.Fatalf("ListTasks failed: %v", err)
	}
	if hadDate {
		t.Error("empty filter should not send a date parameter")
	}
}

func TestClient_LoginSendsNoCredentialHeader(t *testing.T) {
	client, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/Auth/login" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "" {
			t.Errorf("auth endpoint got Authorization header %q", got)
		}
		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)
		if body["username"] != "alice" || body["passwordHash"] != "secret" {
			t.Errorf("unexpected body: %v", body)
		}
		json.NewEncoder(w).Encode(map[string]string{"token": "eyJ"})
	}), "stale-token")

	token, err := client.Login(context.Background(), "alice", "secret")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if token != "eyJ" {
		t.Errorf("token = %q, want eyJ", token)
	}
}

func TestClient_CreateTaskPostsDraft(t *testing.T) {
	client, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/TaskItems" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var draft service.TaskDraft
		json.NewDecoder(r.Body).Decode(&draft)
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(service.Task{
			ID:          "42",
			Title:       draft.Title,
			Description: draft.Description,
			Date:        draft.Date,
		})
	}), "tok")

	created, err := client.CreateTask(context.Background(), service.TaskDraft{
		Title:       "Buy milk",
		Description: "2%",
		Date:        "2025-07-11",
	})
	if err != nil {
		t.Fatalf("CreateTask failed: %v", err)
	}
	if created.ID != "42" || created.Title != "Buy milk" {
		t.Errorf("unexpected task: %+v", created)
	}
}

func TestClient_UpdateTaskPutsFullReplacement(t *testing.T) {
	client, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/TaskItems/7" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var task service.Task
		json.NewDecoder(r.Body).Decode(&task)
		json.NewEncoder(w).Encode(task)
	}), "tok")

	updated, err := client.UpdateTask(context.Background(), "7", service.Task{
		ID:          "7",
		Title:       "Walk dog",
		Description: "evening",
		IsCompleted: true,
		Date:        "2025-07-11",
	})
	if err != nil {
		t.Fatalf("UpdateTask failed: %v", err)
	}
	if !updated.IsCompleted {
		t.Error("expected completed flag in echoed task")
	}
}

func TestClient_DeleteTaskNoContent(t *testing.T) {
	client, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/TaskItems/7" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.WriteHeader(http.StatusNoContent)
	}), "tok")

	if err := client.DeleteTask(context.Background(), "7"); err != nil {
		t.Fatalf("DeleteTask failed: %v", err)
	}
}

func TestClient_NormalizesUnauthorized(t *testing.T) {
	client, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}), "")

	_, err := client.ListTasks(context.Background(), "")
	if !api.IsUnauthorized(err) {
		t.Errorf("expected unauthorized error, got %v", err)
	}
}

func TestClient_NormalizesNotFound(t *testing.T) {
	client, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}), "tok")

	err := client.DeleteTask(context.Background(), "gone")
	if !api.IsNotFound(err) {
		t.Errorf("expected not-found error, got %v", err)
	}
}

func TestClient_ServerRejectedMessageExtraction(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"message field", `{"message":"title required"}`, "title required"},
		{"error field", `{"error":"bad request"}`, "bad request"},
		{"no body", "", "server rejected request (status 400)"},
		{"unparseable body", "<html>nope</html>", "server rejected request (status 400)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
				w.Write([]byte(tt.body))
			}), "tok")

			var apiErr *api.Error
			_, err := client.ListTasks(context.Background(), "")
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.As(err, &apiErr) {
				t.Fatalf("expected *api.Error, got %T", err)
			}
			if apiErr.Kind != api.KindServerRejected || apiErr.Status != 400 {
				t.Errorf("unexpected error: %+v", apiErr)
			}
			if apiErr.Message != tt.want {
				t.Errorf("message = %q, want %q", apiErr.Message, tt.want)
			}
		})
	}
}

func TestClient_NetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close() // Gone before the request

	client := api.New(url, oauth2.StaticTokenSource(&oauth2.Token{AccessToken: "tok"}))
	_, err := client.ListTasks(context.Background(), "")
	if !api.IsNetwork(err) {
		t.Errorf("expected network error, got %v", err)
	}
}

func TestClient_EmptyTokenStillAttempted(t *testing.T) {
	var requests int
	client, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.WriteHeader(http.StatusUnauthorized)
	}), "")

	_, err := client.ListTasks(context.Background(), "")
	if requests != 1 {
		t.Fatalf("expected exactly one request, got %d", requests)
	}
	if !api.IsUnauthorized(err) {
		t.Errorf("expected unauthorized error, got %v", err)
	}
}
