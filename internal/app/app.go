// Package app is the application layer between the CLI and the service
// stack. It constructs every dependency from config, owns the 401
// teardown policy, and exposes the high-level operations the commands
// call.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"njia-admin/internal/api"
	"njia-admin/internal/config"
	"njia-admin/internal/credstore"
	"njia-admin/internal/export"
	"njia-admin/internal/model"
	"njia-admin/internal/njia"
	"njia-admin/internal/query"
	"njia-admin/internal/session"
	"njia-admin/internal/stats"
	"njia-admin/internal/token"
)

// App is the fully wired application. The caller must call Close when done.
type App struct {
	cfg      *config.Config
	store    credstore.Store
	client   *api.Client
	services *njia.Services
	claims   *query.Claims
	users    *query.Users
	images   *query.Images
	session  *session.Manager
	logger   *slog.Logger
	logFile  *os.File
}

// New creates a fully wired App from the given config.
// operation identifies the CLI command being run (e.g. "ClaimsList").
func New(cfg *config.Config, operation string) (*App, error) {
	store, err := credstore.NewStoreFromConfig(cfg.Credstore)
	if err != nil {
		return nil, fmt.Errorf("creating credential store: %w", err)
	}

	opID := time.Now().UTC().Format("20060102T150405Z")
	logger, logFile, err := newLogger(cfg.LogDir, opID)
	if err != nil {
		store.Close()
		return nil, fmt.Errorf("creating logger: %w", err)
	}

	sess := session.NewManager(store)
	if err := sess.Load(); err != nil {
		logger.Warn("could not rehydrate session", "error", err)
	}

	// On a 401 the transport reports the failure; clearing the persisted
	// token and session is this layer's decision. Both operations are
	// idempotent, so overlapping 401s are harmless.
	onUnauthorized := func() {
		if err := store.Delete(credstore.KeyToken); err != nil {
			logger.Error("clearing token after 401", "error", err)
		}
		if err := sess.Logout(); err != nil {
			logger.Error("clearing session after 401", "error", err)
		}
		logger.Warn("authentication rejected; cleared stored credentials")
	}

	timeout := api.DefaultTimeout
	if cfg.API.TimeoutSeconds > 0 {
		timeout = time.Duration(cfg.API.TimeoutSeconds) * time.Second
	}
	client := api.NewClient(cfg.API.BaseURL,
		api.WithTimeout(timeout),
		api.WithTokenSource(credstore.TokenSource{Store: store}),
		api.WithUnauthorizedFunc(onUnauthorized),
		api.WithRateLimit(cfg.API.RatePerSecond),
	)

	services := njia.NewServices(client)

	cache := query.NewMemoryCache(time.Duration(cfg.Cache.TTLSeconds)*time.Second, nil)
	qstore := query.NewStore(cache)

	return &App{
		cfg:      cfg,
		store:    store,
		client:   client,
		services: services,
		claims:   query.NewClaims(services.Claims, qstore),
		users:    query.NewUsers(services.Users, qstore),
		images:   query.NewImages(services.Images, qstore),
		session:  sess,
		logger:   logger,
		logFile:  logFile,
	}, nil
}

// Close releases the credential store and the log file.
func (a *App) Close() error {
	var firstErr error
	if err := a.store.Close(); err != nil {
		firstErr = fmt.Errorf("closing credential store: %w", err)
	}
	if a.logFile != nil {
		if err := a.logFile.Close(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("closing log file: %w", err)
		}
	}
	return firstErr
}

// Session operations (local mock accounts).

// SessionLogin authenticates against the local staff accounts.
func (a *App) SessionLogin(email, password string) (*model.SessionUser, error) {
	user, err := a.session.Login(email, password)
	if err != nil {
		return nil, err
	}
	a.logger.Info("session login", "email", user.Email, "role", string(user.Role))
	return user, nil
}

// SessionLogout tears the local session down.
func (a *App) SessionLogout() error {
	if err := a.session.Logout(); err != nil {
		return err
	}
	a.logger.Info("session logout")
	return nil
}

// SessionUser returns the current local session user, or nil.
func (a *App) SessionUser() *model.SessionUser { return a.session.Current() }

// IsAdmin reports whether the local session carries the admin role.
func (a *App) IsAdmin() bool { return a.session.IsAdmin() }

// TokenInfo inspects the persisted bearer token without verifying it.
// Returns nil when no token is stored.
func (a *App) TokenInfo() (*token.Info, error) {
	raw, err := a.store.Get(credstore.KeyToken)
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return nil, nil
	}
	return token.Inspect(raw)
}

// Backend auth operations.

// Login authenticates against the backend and persists the returned
// bearer token for subsequent calls.
func (a *App) Login(ctx context.Context, email, password string) (*model.LoginResponse, error) {
	resp, err := a.services.Auth.Login(ctx, model.LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, err
	}
	if err := a.store.Set(credstore.KeyToken, resp.Token); err != nil {
		return nil, fmt.Errorf("persisting token: %w", err)
	}
	a.logger.Info("backend login", "email", resp.User.Email)
	return resp, nil
}

// Logout invalidates the token server-side (best effort) and always
// removes the persisted copy.
func (a *App) Logout(ctx context.Context) error {
	if err := a.services.Auth.Logout(ctx); err != nil {
		a.logger.Warn("server-side logout failed", "error", err)
	}
	if err := a.store.Delete(credstore.KeyToken); err != nil {
		return fmt.Errorf("removing token: %w", err)
	}
	a.logger.Info("backend logout")
	return nil
}

// Me returns the backend user for the persisted token.
func (a *App) Me(ctx context.Context) (*model.User, error) {
	return a.services.Auth.Me(ctx)
}

// Register creates a backend account and persists the returned token.
func (a *App) Register(ctx context.Context, req model.RegisterRequest) (*model.LoginResponse, error) {
	resp, err := a.services.Auth.Register(ctx, req)
	if err != nil {
		return nil, err
	}
	if resp.Token != "" {
		if err := a.store.Set(credstore.KeyToken, resp.Token); err != nil {
			return nil, fmt.Errorf("persisting token: %w", err)
		}
	}
	return resp, nil
}

// Claim operations (cache-aware).

func (a *App) Claims(ctx context.Context) ([]model.Claim, error) {
	return a.claims.List(ctx)
}

func (a *App) Claim(ctx context.Context, id int64) (*model.Claim, error) {
	return a.claims.Get(ctx, id)
}

func (a *App) ClaimsByUser(ctx context.Context, userID int64) ([]model.Claim, error) {
	return a.claims.ListByUser(ctx, userID)
}

func (a *App) CreateClaim(ctx context.Context, req model.CreateClaimRequest) (*model.Claim, error) {
	claim, err := a.claims.Create(ctx, req)
	if err != nil {
		return nil, err
	}
	a.logger.Info("claim created", "id", claim.ID)
	return claim, nil
}

func (a *App) UpdateClaim(ctx context.Context, id int64, req model.UpdateClaimRequest) (*model.Claim, error) {
	claim, err := a.claims.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}
	a.logger.Info("claim updated", "id", id)
	return claim, nil
}

func (a *App) DeleteClaim(ctx context.Context, id int64) error {
	if err := a.claims.Delete(ctx, id); err != nil {
		return err
	}
	a.logger.Info("claim deleted", "id", id)
	return nil
}

// User operations (cache-aware). Mutations are admin-gated at the
// command layer; the backend enforces its own rules regardless.

func (a *App) Users(ctx context.Context) ([]model.User, error) {
	return a.users.List(ctx)
}

func (a *App) User(ctx context.Context, id int64) (*model.User, error) {
	return a.users.Get(ctx, id)
}

func (a *App) CreateUser(ctx context.Context, req model.CreateUserRequest) (*model.User, error) {
	user, err := a.users.Create(ctx, req)
	if err != nil {
		return nil, err
	}
	a.logger.Info("user created", "id", user.ID)
	return user, nil
}

func (a *App) UpdateUser(ctx context.Context, id int64, req model.UpdateUserRequest) (*model.User, error) {
	user, err := a.users.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}
	a.logger.Info("user updated", "id", id)
	return user, nil
}

func (a *App) DeleteUser(ctx context.Context, id int64) error {
	if err := a.users.Delete(ctx, id); err != nil {
		return err
	}
	a.logger.Info("user deleted", "id", id)
	return nil
}

// Image operations (cache-aware).

func (a *App) Images(ctx context.Context) ([]model.Image, error) {
	return a.images.List(ctx)
}

func (a *App) Image(ctx context.Context, id int64) (*model.Image, error) {
	return a.images.Get(ctx, id)
}

func (a *App) ImagesByClaim(ctx context.Context, claimID int64) ([]model.Image, error) {
	return a.images.ListByClaim(ctx, claimID)
}

func (a *App) CreateImage(ctx context.Context, req model.CreateImageRequest) (*model.Image, error) {
	image, err := a.images.Create(ctx, req)
	if err != nil {
		return nil, err
	}
	a.logger.Info("image created", "id", image.ID)
	return image, nil
}

func (a *App) UpdateImage(ctx context.Context, id int64, req model.UpdateImageRequest) (*model.Image, error) {
	image, err := a.images.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}
	a.logger.Info("image updated", "id", id)
	return image, nil
}

func (a *App) DeleteImage(ctx context.Context, id int64) error {
	if err := a.images.Delete(ctx, id); err != nil {
		return err
	}
	a.logger.Info("image deleted", "id", id)
	return nil
}

// Statistics over the (cached) claim list.
func (a *App) Statistics(ctx context.Context, recentN int) (*stats.ClaimStatistics, error) {
	claims, err := a.claims.List(ctx)
	if err != nil {
		return nil, err
	}
	return stats.Compute(claims, recentN), nil
}

// Export operations.

func (a *App) newExporter(ctx context.Context) (*export.Exporter, error) {
	sink, err := export.NewSinkFromConfig(ctx, a.cfg.Export)
	if err != nil {
		return nil, fmt.Errorf("creating export sink: %w", err)
	}
	return export.NewExporter(sink, a.cfg.Export.AgeRecipient, nil)
}

// ExportClaims fetches all claims and writes them to the export sink.
// Returns the destination the export landed at.
func (a *App) ExportClaims(ctx context.Context) (string, error) {
	claims, err := a.claims.List(ctx)
	if err != nil {
		return "", err
	}
	e, err := a.newExporter(ctx)
	if err != nil {
		return "", err
	}
	dest, err := e.Claims(ctx, claims)
	if err != nil {
		return "", err
	}
	a.logger.Info("claims exported", "count", len(claims), "dest", dest)
	return dest, nil
}

// ExportUsers fetches all users and writes them to the export sink.
func (a *App) ExportUsers(ctx context.Context) (string, error) {
	users, err := a.users.List(ctx)
	if err != nil {
		return "", err
	}
	e, err := a.newExporter(ctx)
	if err != nil {
		return "", err
	}
	dest, err := e.Users(ctx, users)
	if err != nil {
		return "", err
	}
	a.logger.Info("users exported", "count", len(users), "dest", dest)
	return dest, nil
}

// ExportImages fetches all images and writes them to the export sink.
func (a *App) ExportImages(ctx context.Context) (string, error) {
	images, err := a.images.List(ctx)
	if err != nil {
		return "", err
	}
	e, err := a.newExporter(ctx)
	if err != nil {
		return "", err
	}
	dest, err := e.Images(ctx, images)
	if err != nil {
		return "", err
	}
	a.logger.Info("images exported", "count", len(images), "dest", dest)
	return dest, nil
}
