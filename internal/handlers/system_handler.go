package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/developia-II/catalog-api/utils"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Demo identity for the debug token route. Not a real user.
var demoIdentity = utils.Identity{
	UserID: "6f1c2a9e-3b4d-4e5f-8a7b-9c0d1e2f3a4b",
	Email:  "demo@catalog.local",
}

// CollectionLister is satisfied by *mongo.Database.
type CollectionLister interface {
	ListCollectionNames(ctx context.Context, filter interface{}, opts ...*options.ListCollectionsOptions) ([]string, error)
}

// TokenIssuer is satisfied by *utils.TokenService.
type TokenIssuer interface {
	GenerateToken(identity utils.Identity) (string, error)
	VerifyToken(token string) (*utils.TokenClaims, error)
}

type SystemHandler struct {
	DB     CollectionLister
	Tokens TokenIssuer
}

func NewSystemHandler(db CollectionLister, tokens TokenIssuer) *SystemHandler {
	return &SystemHandler{DB: db, Tokens: tokens}
}

func (h *SystemHandler) Root(c *gin.Context) {
	c.String(http.StatusOK, "Catalog API is running")
}

func (h *SystemHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "catalog-api",
	})
}

// Collections probes the database by listing its collection names.
func (h *SystemHandler) Collections(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	names, err := h.DB.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		logrus.WithError(err).Error("database probe failed")
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse("failed to reach database"))
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse("database reachable", gin.H{"collections": names}))
}

// DebugToken issues a token for the demo identity and verifies it straight
// away, so a client can exercise the protected routes.
func (h *SystemHandler) DebugToken(c *gin.Context) {
	token, err := h.Tokens.GenerateToken(demoIdentity)
	if err != nil {
		logrus.WithError(err).Error("failed to issue debug token")
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse("failed to issue token"))
		return
	}
	claims, err := h.Tokens.VerifyToken(token)
	if err != nil {
		logrus.WithError(err).Error("debug token failed verification")
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse("failed to verify token"))
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse("token issued", gin.H{
		"token": token,
		"claims": gin.H{
			"userId":    claims.UserID,
			"email":     claims.Email,
			"expiresAt": claims.ExpiresAt.Time,
		},
	}))
}
