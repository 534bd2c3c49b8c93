package handler

import (
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	jwt "github.com/golang-jwt/jwt/v5"

	"civigo/backend/internal/config"
	"civigo/backend/internal/models"
)

const userContextKey = "sessionUser"

// jwtSecret signs session tokens. Overridable via JWT_SECRET; the default
// only exists so the prototype runs without any setup.
func jwtSecret() []byte {
	if s := os.Getenv("JWT_SECRET"); s != "" {
		return []byte(s)
	}
	return []byte("civigo-dev-secret")
}

// generateJWT issues a signed token carrying the fabricated user record.
func generateJWT(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id":   user.ID,
		"user_name": user.Name,
		"email":     user.Email,
		"phone":     user.Phone,
		"exp":       time.Now().Add(config.JWTExpiry).Unix(),
		"iss":       config.JWTIssuer,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret())
}

// validateAndGetUser checks the token signature and rebuilds the session
// user from its claims.
func validateAndGetUser(tokenString string) (*models.User, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return jwtSecret(), nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid claims")
	}
	userID, _ := claims["user_id"].(string)
	if userID == "" {
		return nil, errors.New("token has no user id")
	}
	userName, _ := claims["user_name"].(string)
	email, _ := claims["email"].(string)
	phone, _ := claims["phone"].(string)

	return &models.User{ID: userID, Name: userName, Email: email, Phone: phone}, nil
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login is an unauthenticated stub: no password is ever checked. It
// fabricates the demo user record and hands back a session token.
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
		return
	}

	user := &models.User{
		ID:    "1",
		Name:  "Usuário Demo",
		Email: req.Email,
		Phone: "(11) 98765-4321",
	}
	h.issueSession(c, user)
}

type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Phone    string `json:"phone"`
}

// Register fabricates a fresh user record from the form input.
func (h *Handler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name, email and password are required"})
		return
	}

	h.issueSession(c, models.NewUser(req.Name, req.Email, req.Phone))
}

func (h *Handler) issueSession(c *gin.Context, user *models.User) {
	token, err := generateJWT(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}

// RequireUser rejects requests without a valid Bearer token and stores the
// session user in the request context. WebSocket clients may pass the token
// as a query parameter instead, since browsers cannot set headers there.
func (h *Handler) RequireUser(c *gin.Context) {
	tokenString := ""
	authHeader := c.GetHeader("Authorization")
	if len(authHeader) > 7 && authHeader[:7] == "Bearer " {
		tokenString = authHeader[7:]
	} else {
		tokenString = c.Query("token")
	}
	if tokenString == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization token missing"})
		return
	}

	user, err := validateAndGetUser(tokenString)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token or expired"})
		return
	}

	c.Set(userContextKey, user)
	c.Next()
}

// RequireAdmin guards the status-transition surface reserved for the
// municipal authority.
func (h *Handler) RequireAdmin(c *gin.Context) {
	if h.AdminToken == "" || c.GetHeader("X-Admin-Token") != h.AdminToken {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Admin token missing or invalid"})
		return
	}
	c.Next()
}

// sessionUser returns the user stored by RequireUser.
func sessionUser(c *gin.Context) *models.User {
	if v, ok := c.Get(userContextKey); ok {
		if user, ok := v.(*models.User); ok {
			return user
		}
	}
	return nil
}
