package controllers

import (
	"errors"
	"net/http"

	"github.com/junler/fitnessTracker/config"
	"github.com/junler/fitnessTracker/services"
	"github.com/junler/fitnessTracker/utils"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	Cfg      *config.Settings
	Sessions *services.SessionStore
}

func NewAuthController(cfg *config.Settings, sessions *services.SessionStore) *AuthController {
	return &AuthController{Cfg: cfg, Sessions: sessions}
}

type RegisterInput struct {
	Username          string   `json:"username"`
	Password          string   `json:"password"`
	Age               int      `json:"age"`
	Gender            string   `json:"gender"`
	FitnessGoal       string   `json:"fitness_goal"`
	PreferredExercise []string `json:"preferred_exercise"`
}

func (a *AuthController) Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := services.RegisterUser(services.RegistrationInput{
		Username:          input.Username,
		Password:          input.Password,
		Age:               input.Age,
		Gender:            input.Gender,
		FitnessGoal:       input.FitnessGoal,
		PreferredExercise: input.PreferredExercise,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyCredentials):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrUsernameTaken):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "注册失败：" + err.Error()})
		}
		return
	}

	// echo the username back so the client can pre-fill the login form
	c.JSON(http.StatusCreated, gin.H{
		"message":  "注册成功",
		"username": user.Username,
	})
}

type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (a *AuthController) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := services.AuthenticateUser(input.Username, input.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": services.ErrInvalidCredentials.Error()})
		return
	}

	token, err := utils.GenerateJWT(a.Cfg.JWTSecret, user.UserID, user.Username, false)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not generate token"})
		return
	}

	a.Sessions.SetActivePage(user.UserID, config.UserLandingPage)
	c.JSON(http.StatusOK, gin.H{
		"token":       token,
		"username":    user.Username,
		"active_page": config.UserLandingPage,
	})
}

func (a *AuthController) AdminLogin(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Username != a.Cfg.AdminUsername || input.Password != a.Cfg.AdminPassword {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "管理员用户名或密码错误"})
		return
	}

	token, err := utils.GenerateJWT(a.Cfg.JWTSecret, "", input.Username, true)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not generate token"})
		return
	}

	a.Sessions.SetActivePage(sessionKeyFor(&utils.SessionClaims{Username: input.Username, IsAdmin: true}), config.AdminLanding)
	c.JSON(http.StatusOK, gin.H{
		"token":       token,
		"username":    input.Username,
		"active_page": config.AdminLanding,
	})
}

// Logout drops the server-side session entry; the client discards the token.
func (a *AuthController) Logout(c *gin.Context) {
	claims, ok := sessionFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	a.Sessions.Drop(sessionKeyFor(claims))
	c.JSON(http.StatusOK, gin.H{"message": "已退出系统"})
}

// GetSession returns the per-request session snapshot plus the sidebar pages.
func (a *AuthController) GetSession(c *gin.Context) {
	claims, ok := sessionFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	pages := config.UserPages
	landing := config.UserLandingPage
	if claims.IsAdmin {
		pages = config.AdminPages
		landing = config.AdminLanding
	}

	c.JSON(http.StatusOK, gin.H{
		"username":    claims.Username,
		"is_admin":    claims.IsAdmin,
		"pages":       pages,
		"active_page": a.Sessions.ActivePage(sessionKeyFor(claims), landing),
	})
}

type pageInput struct {
	Page string `json:"page" binding:"required"`
}

// SetActivePage records the sidebar selection for this session.
func (a *AuthController) SetActivePage(c *gin.Context) {
	claims, ok := sessionFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var input pageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pages := config.UserPages
	if claims.IsAdmin {
		pages = config.AdminPages
	}
	valid := false
	for _, p := range pages {
		if p == input.Page {
			valid = true
			break
		}
	}
	if !valid {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的页面"})
		return
	}

	a.Sessions.SetActivePage(sessionKeyFor(claims), input.Page)
	c.JSON(http.StatusOK, gin.H{"active_page": input.Page})
}
