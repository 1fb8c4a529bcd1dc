package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"smartinclusion/internal/realtime"
	"smartinclusion/internal/services"
	"smartinclusion/pkg/utils"
)

type RealtimeController struct {
	hub            *realtime.Hub
	accountService services.AccountServiceInterface
	jwtSecret      string
	upgrader       websocket.Upgrader
}

func NewRealtimeController(hub *realtime.Hub, accountService services.AccountServiceInterface, jwtSecret, allowedOrigin string) *RealtimeController {
	return &RealtimeController{
		hub:            hub,
		accountService: accountService,
		jwtSecret:      jwtSecret,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return origin == "" || origin == allowedOrigin
			},
		},
	}
}

// Serve godoc
// @Summary Open the realtime SOS channel
// @Description Upgrades to a websocket; send_sos events are relayed to connected volunteers
// @Tags Realtime
// @Param token query string true "Session token"
// @Router /ws [get]
func (r *RealtimeController) Serve(c *gin.Context) {

	// Browsers cannot set headers on websocket upgrades, so the token
	// travels as a query parameter.
	claims, err := utils.ValidateToken(r.jwtSecret, c.Query("token"))
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
		return
	}

	accountID, err := uuid.Parse(claims.AccountID)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
		return
	}

	// Snapshot the origin profile before the upgrade; SOS events carry
	// this server-side copy, not whatever the client sends.
	profile, err := r.accountService.GetProfile(c.Request.Context(), claims.Role, accountID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	conn, err := r.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("websocket upgrade failed: %v", err)
		return
	}

	client := realtime.NewClient(r.hub, conn, realtime.Profile{
		ID:                accountID,
		FullName:          profile.FullName,
		Phone:             profile.Phone,
		AccessibilityNeed: profile.AccessibilityNeed,
	}, claims.Role)

	go client.Serve()
}
