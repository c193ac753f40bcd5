package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/shopfleet/shopfleet/internal/auth"
	"github.com/shopfleet/shopfleet/internal/pagination"
	"github.com/shopfleet/shopfleet/internal/user/domain"
	"github.com/shopfleet/shopfleet/internal/user/service"
)

type Handler struct {
	users     *service.UserService
	addresses *service.AddressService
	issuer    *auth.TokenIssuer
}

func NewHandler(users *service.UserService, addresses *service.AddressService, issuer *auth.TokenIssuer) *Handler {
	return &Handler{users: users, addresses: addresses, issuer: issuer}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.POST("/login", h.Login)
	r.POST("/register", h.Register)
	r.GET("/get-user-info", h.GetUserInfo)
	r.PUT("/update-info", h.UpdateInfo)
	r.POST("/change-password", h.ChangePassword)
	r.GET("/address/ward", h.GetWards)
	r.GET("/address/district", h.GetDistricts)
	r.GET("/address/city", h.GetCities)
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	token, err := h.users.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, TokenResponse{Token: token})
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	token, err := h.users.Register(req.Username, req.Password, req.Email, req.PhoneNumber)
	if err != nil {
		if errors.Is(err, service.ErrUsernameTaken) || errors.Is(err, service.ErrEmailTaken) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, TokenResponse{Token: token})
}

// GetUserInfo returns the caller's identity payload. Cross-service callers
// may pass ?user_id= to look up another account for display enrichment.
func (h *Handler) GetUserInfo(c *gin.Context) {
	callerID, ok := h.authenticate(c)
	if !ok {
		return
	}

	targetID := callerID
	if raw := c.Query("user_id"); raw != "" && auth.IsCrossService(c) {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid user_id"})
			return
		}
		targetID = id
	}

	user, err := h.users.GetByID(targetID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, userInfoResponse(user))
}

func (h *Handler) UpdateInfo(c *gin.Context) {
	callerID, ok := h.authenticate(c)
	if !ok {
		return
	}
	var req UpdateInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	user, err := h.users.UpdateUser(callerID, service.UpdateInfo{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: req.PhoneNumber,
		WardID:      req.WardID,
		Detail:      req.Detail,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, userInfoResponse(user))
}

func (h *Handler) ChangePassword(c *gin.Context) {
	callerID, ok := h.authenticate(c)
	if !ok {
		return
	}
	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.users.ChangePassword(callerID, req.OldPassword, req.NewPassword); err != nil {
		if errors.Is(err, service.ErrWrongOldPassword) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "password changed successfully"})
}

// GetWards serves the single-ward cross-service lookup (?id=) and the paged
// listing (?district_id=&page=&per_page=).
func (h *Handler) GetWards(c *gin.Context) {
	if raw := c.Query("id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
			return
		}
		ward, err := h.addresses.GetWard(id)
		if err != nil {
			if errors.Is(err, service.ErrWardNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"id":       ward.ID,
			"name":     ward.Name,
			"district": ward.District.Name,
			"city":     ward.District.City.Name,
		})
		return
	}

	page := pagination.Parse(c.Query("page"), c.Query("per_page"))
	districtID, _ := strconv.ParseUint(c.Query("district_id"), 10, 64)
	wards, total, err := h.addresses.ListWards(districtID, page.Offset(), page.PerPage)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"wards":       wards,
		"page":        page.Number,
		"total_pages": pagination.TotalPages(total, page.PerPage),
	})
}

func (h *Handler) GetDistricts(c *gin.Context) {
	page := pagination.Parse(c.Query("page"), c.Query("per_page"))
	cityID, _ := strconv.ParseUint(c.Query("city_id"), 10, 64)
	districts, total, err := h.addresses.ListDistricts(cityID, page.Offset(), page.PerPage)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"districts":   districts,
		"page":        page.Number,
		"total_pages": pagination.TotalPages(total, page.PerPage),
	})
}

func (h *Handler) GetCities(c *gin.Context) {
	page := pagination.Parse(c.Query("page"), c.Query("per_page"))
	cities, total, err := h.addresses.ListCities(page.Offset(), page.PerPage)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"cities":      cities,
		"page":        page.Number,
		"total_pages": pagination.TotalPages(total, page.PerPage),
	})
}

// authenticate verifies the bearer token locally. The user service is the
// only service that does not resolve identity over HTTP.
func (h *Handler) authenticate(c *gin.Context) (uint64, bool) {
	header := c.GetHeader("Authorization")
	token := strings.TrimPrefix(header, "Bearer ")
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "authentication required"})
		return 0, false
	}
	id, err := h.issuer.UserID(token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "invalid or expired token"})
		return 0, false
	}
	return id, true
}

func userInfoResponse(user *domain.User) gin.H {
	identity := service.IdentityFor(user)
	resp := gin.H{
		"id":           identity.ID,
		"username":     identity.Username,
		"email":        identity.Email,
		"phone_number": identity.PhoneNumber,
		"name": gin.H{
			"first_name": user.Name.FirstName,
			"last_name":  user.Name.LastName,
		},
		"role":         identity.Role,
		"capabilities": identity.Capabilities,
	}
	if identity.Capabilities == nil {
		resp["capabilities"] = []string{}
	}
	if user.Address != nil {
		resp["address"] = gin.H{
			"id":      user.Address.ID,
			"detail":  user.Address.Detail,
			"ward_id": user.Address.WardID,
		}
	}
	return resp
}
