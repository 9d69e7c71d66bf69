// Package auth contains handlers for the Google authorization-code flow.
package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/oauth2"

	"datadrop-backend/internal/model"
	"datadrop-backend/internal/repository"
	"datadrop-backend/internal/utilities"
)

// GoogleAuthHandler holds the OAuth2 configuration and the repositories the
// callback needs to upsert the user and append the exchanged token.
type GoogleAuthHandler struct {
	Users            repository.UserRepository
	Tokens           repository.AccessTokenRepository
	OauthConfig      *oauth2.Config
	UserInfoEndpoint string
	HTTPTimeout      time.Duration
}

// NewGoogleAuthHandler creates a GoogleAuthHandler with the provided repositories and OAuth2 configuration.
func NewGoogleAuthHandler(
	users repository.UserRepository,
	tokens repository.AccessTokenRepository,
	oauthConfig *oauth2.Config,
	userInfoEndpoint string,
	httpTimeout time.Duration,
) *GoogleAuthHandler {
	return &GoogleAuthHandler{
		Users:            users,
		Tokens:           tokens,
		OauthConfig:      oauthConfig,
		UserInfoEndpoint: userInfoEndpoint,
		HTTPTimeout:      httpTimeout,
	}
}

// SignIn redirects the caller to the provider's authorization URL.
// The state token is freshly generated per request. The callback does not
// validate it; see the project notes before relying on it for CSRF protection.
// @Summary Redirect to the Google authorization URL
// @Tags Auth
// @Success 302 {string} string "Redirect to provider"
// @Router /auth/google [get]
func (h *GoogleAuthHandler) SignIn(c *gin.Context) {
	state := uuid.NewString()
	c.Redirect(http.StatusFound, h.OauthConfig.AuthCodeURL(state))
}

// Callback exchanges the authorization code for tokens, fetches the user's
// profile, creates the user on first sign-in and appends an access token row.
// @Summary Handle the provider callback: exchange code, fetch profile, persist user and token
// @Tags Auth
// @Produce json
// @Param code query string true "Authorization code from google"
// @Success 200 {object} authResponse "Exchange succeeded"
// @Failure 400 {object} utilities.ErrorResponse "No authorization code provided"
// @Failure 500 {object} utilities.ErrorResponse "Exchange, userinfo, or database failure"
// @Router /auth/google/oauth2callback [get]
func (h *GoogleAuthHandler) Callback(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: "No authorization code provided",
		})
		return
	}

	// Bound every outbound provider call with the configured timeout.
	ctx := context.WithValue(
		c.Request.Context(),
		oauth2.HTTPClient,
		&http.Client{Timeout: h.HTTPTimeout},
	)

	token, err := h.OauthConfig.Exchange(ctx, code)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to exchange authorization code: %v", err),
		})
		return
	}

	uInfo, err := h.fetchUserInfo(ctx, token)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to fetch user information: %v", err),
		})
		return
	}

	user, err := h.resolveUser(uInfo)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to save user: %v", err),
		})
		return
	}

	// Token append is a separate effect: a failure here leaves the user row
	// in place. There is no transaction spanning both writes.
	tokenRow := model.AccessToken{
		UserID:       user.ID,
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		ExpiresIn:    expiresInSeconds(token),
	}
	if err := h.Tokens.Save(&tokenRow); err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to save access token: %v", err),
		})
		return
	}

	c.JSON(http.StatusOK, authResponse{
		User: userResponse{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
		},
	})
}

// fetchUserInfo calls the userinfo endpoint with the exchanged token and
// requires the provider's subject id and email to be present.
func (h *GoogleAuthHandler) fetchUserInfo(ctx context.Context, token *oauth2.Token) (model.GoogleUserInfo, error) {
	var uInfo model.GoogleUserInfo

	client := h.OauthConfig.Client(ctx, token)
	resp, err := client.Get(h.UserInfoEndpoint)
	if err != nil {
		return uInfo, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return uInfo, fmt.Errorf("userinfo endpoint returned status %d: %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(&uInfo); err != nil {
		return uInfo, fmt.Errorf("failed to decode user info: %w", err)
	}

	if uInfo.GID == "" {
		return uInfo, fmt.Errorf("user info is missing the subject id")
	}
	if uInfo.Email == "" {
		return uInfo, fmt.Errorf("user info is missing the email")
	}
	return uInfo, nil
}

// resolveUser looks the user up by the provider subject id and creates the
// record on first sign-in.
func (h *GoogleAuthHandler) resolveUser(uInfo model.GoogleUserInfo) (model.User, error) {
	user, err := h.Users.FindByGoogleID(uInfo.GID)

	switch {
	case errors.Is(err, repository.ErrNotFound):
		user = model.User{
			GoogleID: uInfo.GID,
			Name:     uInfo.Name,
			Email:    uInfo.Email,
		}
		if err := h.Users.Save(&user); err != nil {
			return model.User{}, err
		}
		return user, nil
	case err != nil:
		return model.User{}, err
	default:
		return user, nil
	}
}

// expiresInSeconds pulls the raw expires_in field off the token response,
// defaulting to 0 when the provider omitted it.
func expiresInSeconds(token *oauth2.Token) int64 {
	switch v := token.Extra("expires_in").(type) {
	case float64:
		return int64(v)
	case int64:
		return v
	case json.Number:
		n, _ := v.Int64()
		return n
	default:
		return 0
	}
}
