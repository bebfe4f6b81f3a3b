package controllers

import (
	"crypto/subtle"
	"net/http"
	"time"

	"portfolio/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// AdminCredentials is the single admin account, configured out of band.
type AdminCredentials struct {
	Username     string
	PasswordHash string
}

type AuthController struct {
	auth         *middleware.Authenticator
	credentials  AdminCredentials
	secureCookie bool
	now          func() time.Time
}

func NewAuthController(auth *middleware.Authenticator, credentials AdminCredentials, secureCookie bool) *AuthController {
	return &AuthController{
		auth:         auth,
		credentials:  credentials,
		secureCookie: secureCookie,
		now:          time.Now,
	}
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login godoc
// @Summary Admin login
// @Description Sets the admin_session cookie and returns the same token for Bearer use
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Admin credentials"
// @Success 200 {object} map[string]interface{} "Login successful"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 401 {object} map[string]interface{} "Invalid username or password"
// @Router /api/auth/login [post]
func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(c, err)
		return
	}

	if ac.credentials.PasswordHash == "" {
		zap.L().Error("admin login attempted but ADMIN_PASSWORD_HASH is not set")
		respondError(c, http.StatusServiceUnavailable, "Admin login is not configured")
		return
	}

	userOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(ac.credentials.Username)) == 1
	passErr := bcrypt.CompareHashAndPassword([]byte(ac.credentials.PasswordHash), []byte(req.Password))
	if !userOK || passErr != nil {
		zap.L().Warn("failed admin login", zap.String("client_ip", c.ClientIP()))
		respondError(c, http.StatusUnauthorized, "Invalid username or password")
		return
	}

	token, expires, err := ac.auth.IssueToken(req.Username, ac.now())
	if err != nil {
		respondServerError(c, "Could not generate token", err)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookie, token, int(ac.auth.TTL().Seconds()), "/", "", ac.secureCookie, true)
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Login successful",
		"data": gin.H{
			"token":      token,
			"expires_at": expires.UTC(),
		},
	})
}

// Logout godoc
// @Summary Admin logout
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]interface{} "Logged out"
// @Router /api/auth/logout [post]
func (ac *AuthController) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", ac.secureCookie, true)
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Logged out",
		"data":    nil,
	})
}

// Session godoc
// @Summary Current session state
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]interface{} "Session state"
// @Router /api/auth/session [get]
func (ac *AuthController) Session(c *gin.Context) {
	c.Header("Cache-Control", "no-store")
	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   gin.H{"authenticated": ac.auth.IsAuthenticated(c.Request)},
	})
}
