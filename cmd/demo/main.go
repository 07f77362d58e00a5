package main

import (
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/valyala/fasthttp"

	"github.com/simpleapi/simpleapi/v2"
	"github.com/simpleapi/simpleapi/v2/middlewares"
)

// HealthController answers liveness probes.
type HealthController struct{}

func NewHealthController() simpleapi.Controller { return &HealthController{} }

func (c *HealthController) Actions() map[string]simpleapi.Action {
	return map[string]simpleapi.Action{
		"check": c.check,
	}
}

func (c *HealthController) check(*simpleapi.Request) any {
	return simpleapi.Data(simpleapi.StatusOK, map[string]any{
		"status":    "healthy",
		"timestamp": time.Now().Unix(),
	})
}

// UserController serves a small in-memory user set and shows request
// injection: the dispatcher hands it the request at construction time.
type UserController struct {
	req *simpleapi.Request
}

func NewUserController() simpleapi.Controller { return &UserController{} }

func (c *UserController) SetRequest(r *simpleapi.Request) { c.req = r }

func (c *UserController) Actions() map[string]simpleapi.Action {
	return map[string]simpleapi.Action{
		"show":   c.show,
		"files":  c.files,
		"create": c.create,
		"remove": c.remove,
	}
}

var users = map[string]string{"1": "ada", "2": "grace"}

func (c *UserController) show(r *simpleapi.Request) any {
	id := r.Param("userId")
	name, ok := users[id]
	if !ok {
		return simpleapi.Errors(simpleapi.StatusNotFound, "no such user")
	}
	return simpleapi.Data(simpleapi.StatusOK, map[string]string{"id": id, "name": name})
}

func (c *UserController) files(r *simpleapi.Request) any {
	return simpleapi.Data(simpleapi.StatusOK, map[string]any{
		"userId": r.Param("userId"),
		"limit":  r.InputInt("limit", 10),
		"files":  []string{"notes.txt", "report.pdf"},
	})
}

func (c *UserController) create(r *simpleapi.Request) any {
	var in struct {
		Name string `json:"name"`
	}
	if err := r.Bind(&in); err != nil || in.Name == "" {
		return simpleapi.Errors(simpleapi.StatusUnprocessable, map[string][]string{
			"name": {"is required"},
		})
	}
	return simpleapi.Message(simpleapi.StatusCreated, "user "+in.Name+" created")
}

func (c *UserController) remove(r *simpleapi.Request) any {
	id := r.Param("userId")
	if _, ok := users[id]; !ok {
		return simpleapi.Errors(simpleapi.StatusNotFound, "no such user")
	}
	delete(users, id)
	return simpleapi.OK("user " + id + " removed")
}

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	reg := simpleapi.NewRegistry()
	reg.GET("/health", NewHealthController, "check")

	api := reg.Group("api", middlewares.RequestID{}, middlewares.NewLogging(logger))
	api.GET("/api/user/{userId}", NewUserController, "show")
	api.GET("/api/user/{userId}/files", NewUserController, "files")
	api.POST("/api/user", NewUserController, "create")

	admin := reg.Group("admin", middlewares.TokenAuth{Token: os.Getenv("DEMO_TOKEN")})
	admin.DELETE("/api/user/{userId}", NewUserController, "remove")

	srv := simpleapi.NewServer(reg)
	srv.SetLogger(logger)

	// fasthttp transport alongside net/http, same registry.
	go func() {
		log.Println("fasthttp server starting on :8081")
		if err := fasthttp.ListenAndServe(":8081", srv.ServeFastHTTP); err != nil {
			log.Fatalf("fasthttp server failed: %v", err)
		}
	}()

	log.Println("net/http server starting on :8080")
	if err := http.ListenAndServe(":8080", srv); err != nil {
		log.Fatalf("net/http server failed: %v", err)
	}
}
