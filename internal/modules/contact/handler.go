package contact

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"marketingsite/internal/pkg/response"
	"marketingsite/internal/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	jwtsvc "marketingsite/internal/pkg/jwt"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Origin checking is delegated to the CORS layer; the socket itself
	// is gated by the JWT in the query string.
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type Handler struct {
	service *Service
	hub     *Hub
	jwt     *jwtsvc.Service
}

func NewHandler(service *Service, hub *Hub, jwt *jwtsvc.Service) *Handler {
	return &Handler{service: service, hub: hub, jwt: jwt}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, auth gin.HandlerFunc) {
	rg.POST("/submit", h.Submit)
	rg.GET("/submissions", auth, h.ListSubmissions)
	rg.GET("/ws", h.Subscribe)
}

// Submit accepts a lead from the public contact form. No auth required.
func (h *Handler) Submit(c *gin.Context) {
	var form SubmitForm
	if err := c.ShouldBind(&form); err != nil {
		response.Detail(c, http.StatusUnprocessableEntity, validation.Detail(err))
		return
	}

	sub, err := h.service.Submit(c.Request.Context(), form)
	if err != nil {
		response.Detail(c, http.StatusInternalServerError, "Failed to save submission")
		return
	}

	c.JSON(http.StatusCreated, NewSubmissionResponse(sub))
}

func (h *Handler) ListSubmissions(c *gin.Context) {
	skip, limit := pagination(c, 100)

	subs, err := h.service.List(c.Request.Context(), skip, limit)
	if err != nil {
		response.Detail(c, http.StatusInternalServerError, "Failed to list submissions")
		return
	}

	out := make([]SubmissionResponse, 0, len(subs))
	for i := range subs {
		out = append(out, NewSubmissionResponse(&subs[i]))
	}
	c.JSON(http.StatusOK, out)
}

// Subscribe upgrades to a websocket and streams new submissions as they
// arrive. Auth via ?token= since browsers cannot set headers on websockets.
func (h *Handler) Subscribe(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		response.Detail(c, http.StatusUnauthorized, "Not authenticated")
		return
	}

	claims, err := h.jwt.ValidateToken(token)
	if err != nil {
		response.Detail(c, http.StatusUnauthorized, "Could not validate credentials")
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("websocket upgrade failed: %v", err)
		return
	}

	userID := claims.UserID
	h.hub.Register(userID, conn)
	defer func() {
		h.hub.Unregister(userID)
	}()

	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	})

	go h.pingLoop(userID)

	// Drain the connection until the client hangs up. Subscribers only
	// receive; anything they send is ignored.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

// pingLoop keeps the socket alive through the hub so pings share the
// client's write lock with broadcasts; it stops once the client is gone.
func (h *Handler) pingLoop(userID int64) {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for range ticker.C {
		if err := h.hub.Ping(userID); err != nil {
			return
		}
	}
}

func pagination(c *gin.Context, defaultLimit int) (skip, limit int) {
	skip = 0
	limit = defaultLimit
	if v := c.Query("skip"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			skip = n
		}
	}
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			limit = n
		}
	}
	return skip, limit
}
