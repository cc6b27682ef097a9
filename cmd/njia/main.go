package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"njia-admin/internal/app"
	"njia-admin/internal/config"
	"njia-admin/internal/model"
	"njia-admin/internal/stats"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newApp reads the config and creates an App. The caller must defer app.Close().
// operation identifies the CLI command being run (e.g. "ClaimsList", "Login").
func newApp(operation string) (*app.App, error) {
	defaults, err := app.GetDefaults()
	if err != nil {
		return nil, fmt.Errorf("getting defaults: %w", err)
	}

	cfg, err := config.ReadFromFile(defaults["config_path"])
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	a, err := app.New(cfg, operation)
	if err != nil {
		return nil, fmt.Errorf("initializing app: %w", err)
	}

	return a, nil
}

// promptPassword reads a password without echo when stdin is a terminal,
// falling back to a plain line read otherwise (tests, piped input).
func promptPassword(prompt string) (string, error) {
	fmt.Print(prompt)
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		raw, err := term.ReadPassword(fd)
		fmt.Println()
		if err != nil {
			return "", fmt.Errorf("reading password: %w", err)
		}
		return string(raw), nil
	}
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("reading password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}

func printClaim(c *model.Claim) {
	fmt.Printf("Claim #%d\n", c.ID)
	fmt.Printf("  Status:     %s\n", c.Status)
	fmt.Printf("  Severity:   %s\n", c.Severity)
	fmt.Printf("  Location:   %s (%.5f, %.5f)\n", c.Location, c.Latitude, c.Longitude)
	fmt.Printf("  Detection:  %s\n", c.DetectionType)
	fmt.Printf("  Owner:      #%d %s\n", c.User.ID, c.User.Email)
	if c.Description != "" {
		fmt.Printf("  Description: %s\n", c.Description)
	}
	if c.ConfirmationTime != nil {
		fmt.Printf("  Confirmed:  %s\n", c.ConfirmationTime.Format("2006-01-02 15:04:05"))
	}
	fmt.Printf("  Created:    %s\n", c.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Printf("  Images:     %d\n", len(c.Images))
}

func printClaimList(claims []model.Claim) {
	for _, c := range claims {
		fmt.Printf("#%-6d %-10s %-8s %-10s %-25s %s\n",
			c.ID,
			c.Status,
			c.Severity,
			c.DetectionType,
			c.Location,
			c.User.Email,
		)
	}
}

func printUser(u *model.User) {
	fmt.Printf("User #%d\n", u.ID)
	fmt.Printf("  Email:   %s\n", u.Email)
	fmt.Printf("  Name:    %s %s\n", u.FirstName, u.LastName)
	fmt.Printf("  Created: %s\n", u.CreatedAt.Format("2006-01-02 15:04:05"))
}

func printImage(img *model.Image) {
	fmt.Printf("Image #%d\n", img.ID)
	fmt.Printf("  URL:       %s\n", img.URL)
	fmt.Printf("  Hash:      %s\n", img.Hash)
	fmt.Printf("  Timestamp: %s\n", img.Timestamp.Format("2006-01-02 15:04:05"))
}

var rootCmd = &cobra.Command{
	Use:   "njia",
	Short: "Njiani insurance claims admin CLI",
}

// config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		defaults, err := app.GetDefaults()
		if err != nil {
			return fmt.Errorf("failed to get defaults: %w", err)
		}

		cfg := config.NewConfig(defaults["base_dir"])
		cfg.LogDir = defaults["log_dir"]

		if err := config.Init(defaults["config_path"], cfg); err != nil {
			return fmt.Errorf("failed to initialize config: %w", err)
		}

		fmt.Printf("Configuration initialized at %s\n", defaults["config_path"])
		fmt.Printf("API Base URL: %s\n", cfg.API.BaseURL)
		fmt.Printf("Base Dir:     %s\n", defaults["base_dir"])
		return nil
	},
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "View configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		defaults, err := app.GetDefaults()
		if err != nil {
			return fmt.Errorf("failed to get defaults: %w", err)
		}

		cfg, err := config.ReadFromFile(defaults["config_path"])
		if err != nil {
			return fmt.Errorf("failed to read config: %w", err)
		}

		fmt.Printf("Configuration from %s:\n\n", defaults["config_path"])
		fmt.Printf("API Base URL:   %s\n", cfg.API.BaseURL)
		fmt.Printf("API Timeout:    %ds\n", cfg.API.TimeoutSeconds)
		fmt.Printf("Credstore:      %s (%s)\n", cfg.Credstore.Type, cfg.Credstore.DataDir)
		fmt.Printf("Cache TTL:      %ds\n", cfg.Cache.TTLSeconds)
		fmt.Printf("Export:         %s\n", cfg.Export.Type)
		fmt.Printf("Log Dir:        %s\n", cfg.LogDir)
		return nil
	},
}

// login command (local dashboard session, plus a backend token when the
// server accepts the same credentials)
var loginCmd = &cobra.Command{
	Use:   "login EMAIL",
	Short: "Log in to the dashboard",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("Login")
		if err != nil {
			return err
		}
		defer a.Close()

		password, err := promptPassword("Password: ")
		if err != nil {
			return err
		}

		user, err := a.SessionLogin(args[0], password)
		if err != nil {
			return err
		}
		fmt.Printf("Logged in as %s (%s)\n", user.Name, user.Role)

		if _, err := a.Login(cmd.Context(), args[0], password); err != nil {
			fmt.Printf("No backend token obtained: %v\n", err)
		} else {
			fmt.Println("Backend token stored.")
		}
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out and discard credentials",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("Logout")
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.SessionLogout(); err != nil {
			return err
		}
		if err := a.Logout(cmd.Context()); err != nil {
			return err
		}
		fmt.Println("Logged out.")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current session",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("Whoami")
		if err != nil {
			return err
		}
		defer a.Close()

		user := a.SessionUser()
		if user == nil {
			fmt.Println("Not logged in.")
		} else {
			fmt.Printf("%s <%s> (%s)\n", user.Name, user.Email, user.Role)
		}

		info, err := a.TokenInfo()
		if err != nil {
			fmt.Printf("Stored token unreadable: %v\n", err)
			return nil
		}
		if info == nil {
			fmt.Println("No backend token stored.")
			return nil
		}
		state := "valid"
		if info.Expired(time.Now()) {
			state = "expired"
		}
		fmt.Printf("Backend token: subject=%s email=%s issuer=%s (%s)\n",
			info.Subject, info.Email, info.Issuer, state)
		if !info.ExpiresAt.IsZero() {
			fmt.Printf("Expires: %s\n", info.ExpiresAt.Format("2006-01-02 15:04:05"))
		}
		return nil
	},
}

// register command (server auth)
var registerCmd = &cobra.Command{
	Use:   "register EMAIL",
	Short: "Register a backend account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		firstName, _ := cmd.Flags().GetString("first-name")
		lastName, _ := cmd.Flags().GetString("last-name")

		a, err := newApp("Register")
		if err != nil {
			return err
		}
		defer a.Close()

		password, err := promptPassword("Password: ")
		if err != nil {
			return err
		}

		resp, err := a.Register(cmd.Context(), model.RegisterRequest{
			Email:     args[0],
			Password:  password,
			FirstName: firstName,
			LastName:  lastName,
		})
		if err != nil {
			return fmt.Errorf("registering: %w", err)
		}
		fmt.Printf("Registered user #%d %s\n", resp.User.ID, resp.User.Email)
		if resp.Token != "" {
			fmt.Println("Backend token stored.")
		}
		return nil
	},
}

var meCmd = &cobra.Command{
	Use:   "me",
	Short: "Show the backend user for the stored token",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("Me")
		if err != nil {
			return err
		}
		defer a.Close()

		user, err := a.Me(cmd.Context())
		if err != nil {
			return err
		}
		printUser(user)
		return nil
	},
}

// claims command
var claimsCmd = &cobra.Command{
	Use:   "claims",
	Short: "Manage claims",
}

var claimsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List claims",
	RunE: func(cmd *cobra.Command, args []string) error {
		status, _ := cmd.Flags().GetString("status")
		severity, _ := cmd.Flags().GetString("severity")
		search, _ := cmd.Flags().GetString("search")
		page, _ := cmd.Flags().GetInt("page")
		pageSize, _ := cmd.Flags().GetInt("page-size")

		a, err := newApp("ClaimsList")
		if err != nil {
			return err
		}
		defer a.Close()

		claims, err := a.Claims(cmd.Context())
		if err != nil {
			return err
		}

		filter := stats.Filter{
			Status:   model.ClaimStatus(strings.ToUpper(status)),
			Severity: model.SeverityLevel(strings.ToUpper(severity)),
			Search:   search,
		}
		filtered := filter.Apply(claims)
		pageClaims, totalPages := stats.Paginate(filtered, page, pageSize)

		if len(pageClaims) == 0 {
			fmt.Println("No claims found.")
			return nil
		}
		printClaimList(pageClaims)
		fmt.Printf("\nPage %d of %d (%d claim(s) matched)\n", page, totalPages, len(filtered))
		return nil
	},
}

var claimsGetCmd = &cobra.Command{
	Use:   "get ID",
	Short: "Show one claim",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		a, err := newApp("ClaimsGet")
		if err != nil {
			return err
		}
		defer a.Close()

		claim, err := a.Claim(cmd.Context(), id)
		if err != nil {
			return err
		}
		printClaim(claim)
		return nil
	},
}

var claimsByUserCmd = &cobra.Command{
	Use:   "by-user USER_ID",
	Short: "List claims owned by a user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, err := parseID(args[0])
		if err != nil {
			return err
		}

		a, err := newApp("ClaimsByUser")
		if err != nil {
			return err
		}
		defer a.Close()

		claims, err := a.ClaimsByUser(cmd.Context(), userID)
		if err != nil {
			return err
		}
		if len(claims) == 0 {
			fmt.Println("No claims found.")
			return nil
		}
		printClaimList(claims)
		return nil
	},
}

var claimsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a claim",
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, _ := cmd.Flags().GetInt64("user-id")
		location, _ := cmd.Flags().GetString("location")
		lat, _ := cmd.Flags().GetFloat64("lat")
		lon, _ := cmd.Flags().GetFloat64("lon")
		status, _ := cmd.Flags().GetString("status")
		severity, _ := cmd.Flags().GetString("severity")
		description, _ := cmd.Flags().GetString("description")
		detection, _ := cmd.Flags().GetString("detection")
		hash, _ := cmd.Flags().GetString("hash")

		a, err := newApp("ClaimsCreate")
		if err != nil {
			return err
		}
		defer a.Close()

		claim, err := a.CreateClaim(cmd.Context(), model.CreateClaimRequest{
			UserID:        userID,
			Location:      location,
			Latitude:      lat,
			Longitude:     lon,
			Status:        model.ClaimStatus(strings.ToUpper(status)),
			Hash:          hash,
			Severity:      model.SeverityLevel(strings.ToUpper(severity)),
			Description:   description,
			DetectionType: model.DetectionType(strings.ToUpper(detection)),
		})
		if err != nil {
			return fmt.Errorf("creating claim: %w", err)
		}
		fmt.Printf("Created claim #%d\n", claim.ID)
		return nil
	},
}

var claimsUpdateCmd = &cobra.Command{
	Use:   "update ID",
	Short: "Update a claim (only changed flags are sent)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		var req model.UpdateClaimRequest
		if cmd.Flags().Changed("location") {
			v, _ := cmd.Flags().GetString("location")
			req.Location = &v
		}
		if cmd.Flags().Changed("lat") {
			v, _ := cmd.Flags().GetFloat64("lat")
			req.Latitude = &v
		}
		if cmd.Flags().Changed("lon") {
			v, _ := cmd.Flags().GetFloat64("lon")
			req.Longitude = &v
		}
		if cmd.Flags().Changed("status") {
			v, _ := cmd.Flags().GetString("status")
			s := model.ClaimStatus(strings.ToUpper(v))
			req.Status = &s
		}
		if cmd.Flags().Changed("severity") {
			v, _ := cmd.Flags().GetString("severity")
			s := model.SeverityLevel(strings.ToUpper(v))
			req.Severity = &s
		}
		if cmd.Flags().Changed("description") {
			v, _ := cmd.Flags().GetString("description")
			req.Description = &v
		}
		if cmd.Flags().Changed("detection") {
			v, _ := cmd.Flags().GetString("detection")
			d := model.DetectionType(strings.ToUpper(v))
			req.DetectionType = &d
		}
		if cmd.Flags().Changed("hash") {
			v, _ := cmd.Flags().GetString("hash")
			req.Hash = &v
		}

		a, err := newApp("ClaimsUpdate")
		if err != nil {
			return err
		}
		defer a.Close()

		claim, err := a.UpdateClaim(cmd.Context(), id, req)
		if err != nil {
			return fmt.Errorf("updating claim: %w", err)
		}
		printClaim(claim)
		return nil
	},
}

var claimsDeleteCmd = &cobra.Command{
	Use:   "delete ID",
	Short: "Delete a claim",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		a, err := newApp("ClaimsDelete")
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.DeleteClaim(cmd.Context(), id); err != nil {
			return fmt.Errorf("deleting claim: %w", err)
		}
		fmt.Printf("Deleted claim #%d\n", id)
		return nil
	},
}

// users command
var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Manage users",
}

// requireAdmin gates user mutations on the local session role. The
// backend enforces its own rules regardless.
func requireAdmin(a *app.App) error {
	if !a.IsAdmin() {
		return fmt.Errorf("admin role required")
	}
	return nil
}

var usersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List users",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("UsersList")
		if err != nil {
			return err
		}
		defer a.Close()

		users, err := a.Users(cmd.Context())
		if err != nil {
			return err
		}
		if len(users) == 0 {
			fmt.Println("No users found.")
			return nil
		}
		for _, u := range users {
			fmt.Printf("#%-6d %-30s %s %s\n", u.ID, u.Email, u.FirstName, u.LastName)
		}
		return nil
	},
}

var usersGetCmd = &cobra.Command{
	Use:   "get ID",
	Short: "Show one user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		a, err := newApp("UsersGet")
		if err != nil {
			return err
		}
		defer a.Close()

		user, err := a.User(cmd.Context(), id)
		if err != nil {
			return err
		}
		printUser(user)
		return nil
	},
}

var usersCreateCmd = &cobra.Command{
	Use:   "create EMAIL",
	Short: "Create a user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		firstName, _ := cmd.Flags().GetString("first-name")
		lastName, _ := cmd.Flags().GetString("last-name")

		a, err := newApp("UsersCreate")
		if err != nil {
			return err
		}
		defer a.Close()

		if err := requireAdmin(a); err != nil {
			return err
		}

		password, err := promptPassword("Password: ")
		if err != nil {
			return err
		}

		user, err := a.CreateUser(cmd.Context(), model.CreateUserRequest{
			Email:     args[0],
			FirstName: firstName,
			LastName:  lastName,
			Password:  password,
		})
		if err != nil {
			return fmt.Errorf("creating user: %w", err)
		}
		fmt.Printf("Created user #%d %s\n", user.ID, user.Email)
		return nil
	},
}

var usersUpdateCmd = &cobra.Command{
	Use:   "update ID",
	Short: "Update a user (only changed flags are sent)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		var req model.UpdateUserRequest
		if cmd.Flags().Changed("email") {
			v, _ := cmd.Flags().GetString("email")
			req.Email = &v
		}
		if cmd.Flags().Changed("first-name") {
			v, _ := cmd.Flags().GetString("first-name")
			req.FirstName = &v
		}
		if cmd.Flags().Changed("last-name") {
			v, _ := cmd.Flags().GetString("last-name")
			req.LastName = &v
		}

		a, err := newApp("UsersUpdate")
		if err != nil {
			return err
		}
		defer a.Close()

		if err := requireAdmin(a); err != nil {
			return err
		}

		user, err := a.UpdateUser(cmd.Context(), id, req)
		if err != nil {
			return fmt.Errorf("updating user: %w", err)
		}
		printUser(user)
		return nil
	},
}

var usersDeleteCmd = &cobra.Command{
	Use:   "delete ID",
	Short: "Delete a user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		a, err := newApp("UsersDelete")
		if err != nil {
			return err
		}
		defer a.Close()

		if err := requireAdmin(a); err != nil {
			return err
		}

		if err := a.DeleteUser(cmd.Context(), id); err != nil {
			return fmt.Errorf("deleting user: %w", err)
		}
		fmt.Printf("Deleted user #%d\n", id)
		return nil
	},
}

// images command
var imagesCmd = &cobra.Command{
	Use:   "images",
	Short: "Manage evidence images",
}

var imagesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List images",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("ImagesList")
		if err != nil {
			return err
		}
		defer a.Close()

		images, err := a.Images(cmd.Context())
		if err != nil {
			return err
		}
		if len(images) == 0 {
			fmt.Println("No images found.")
			return nil
		}
		for _, img := range images {
			fmt.Printf("#%-6d %-50s %s\n", img.ID, img.URL, img.Timestamp.Format("2006-01-02 15:04:05"))
		}
		return nil
	},
}

var imagesGetCmd = &cobra.Command{
	Use:   "get ID",
	Short: "Show one image",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		a, err := newApp("ImagesGet")
		if err != nil {
			return err
		}
		defer a.Close()

		img, err := a.Image(cmd.Context(), id)
		if err != nil {
			return err
		}
		printImage(img)
		return nil
	},
}

var imagesByClaimCmd = &cobra.Command{
	Use:   "by-claim CLAIM_ID",
	Short: "List images attached to a claim",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		claimID, err := parseID(args[0])
		if err != nil {
			return err
		}

		a, err := newApp("ImagesByClaim")
		if err != nil {
			return err
		}
		defer a.Close()

		images, err := a.ImagesByClaim(cmd.Context(), claimID)
		if err != nil {
			return err
		}
		if len(images) == 0 {
			fmt.Println("No images found.")
			return nil
		}
		for _, img := range images {
			fmt.Printf("#%-6d %-50s %s\n", img.ID, img.URL, img.Timestamp.Format("2006-01-02 15:04:05"))
		}
		return nil
	},
}

var imagesCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Attach an image to a claim",
	RunE: func(cmd *cobra.Command, args []string) error {
		claimID, _ := cmd.Flags().GetInt64("claim-id")
		url, _ := cmd.Flags().GetString("url")
		hash, _ := cmd.Flags().GetString("hash")
		timestamp, _ := cmd.Flags().GetString("timestamp")

		a, err := newApp("ImagesCreate")
		if err != nil {
			return err
		}
		defer a.Close()

		img, err := a.CreateImage(cmd.Context(), model.CreateImageRequest{
			ClaimID:   claimID,
			URL:       url,
			Hash:      hash,
			Timestamp: timestamp,
		})
		if err != nil {
			return fmt.Errorf("creating image: %w", err)
		}
		fmt.Printf("Created image #%d\n", img.ID)
		return nil
	},
}

var imagesUpdateCmd = &cobra.Command{
	Use:   "update ID",
	Short: "Update an image (only changed flags are sent)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		var req model.UpdateImageRequest
		if cmd.Flags().Changed("url") {
			v, _ := cmd.Flags().GetString("url")
			req.URL = &v
		}
		if cmd.Flags().Changed("hash") {
			v, _ := cmd.Flags().GetString("hash")
			req.Hash = &v
		}
		if cmd.Flags().Changed("timestamp") {
			v, _ := cmd.Flags().GetString("timestamp")
			req.Timestamp = &v
		}

		a, err := newApp("ImagesUpdate")
		if err != nil {
			return err
		}
		defer a.Close()

		img, err := a.UpdateImage(cmd.Context(), id, req)
		if err != nil {
			return fmt.Errorf("updating image: %w", err)
		}
		printImage(img)
		return nil
	},
}

var imagesDeleteCmd = &cobra.Command{
	Use:   "delete ID",
	Short: "Delete an image",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		a, err := newApp("ImagesDelete")
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.DeleteImage(cmd.Context(), id); err != nil {
			return fmt.Errorf("deleting image: %w", err)
		}
		fmt.Printf("Deleted image #%d\n", id)
		return nil
	},
}

// stats command
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show claim statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		recent, _ := cmd.Flags().GetInt("recent")

		a, err := newApp("Stats")
		if err != nil {
			return err
		}
		defer a.Close()

		s, err := a.Statistics(cmd.Context(), recent)
		if err != nil {
			return err
		}

		fmt.Printf("Total claims: %d\n", s.Total)
		fmt.Printf("  Pending:  %d\n", s.Pending)
		fmt.Printf("  Verified: %d\n", s.Verified)
		fmt.Printf("  Rejected: %d\n", s.Rejected)
		fmt.Printf("  Resolved: %d\n", s.Resolved)

		fmt.Println("\nBy severity:")
		for _, sev := range []model.SeverityLevel{model.SeverityLow, model.SeverityMedium, model.SeverityHigh, model.SeverityCritical} {
			fmt.Printf("  %-9s %d\n", sev, s.BySeverity[sev])
		}

		fmt.Println("\nBy detection type:")
		for _, dt := range []model.DetectionType{model.DetectionAutomatic, model.DetectionManual} {
			fmt.Printf("  %-10s %d\n", dt, s.ByDetectionType[dt])
		}

		if len(s.ByLocation) > 0 {
			fmt.Println("\nTop locations:")
			for _, lc := range s.ByLocation {
				fmt.Printf("  %-25s %d\n", lc.Location, lc.Count)
			}
		}

		if len(s.RecentClaims) > 0 {
			fmt.Println("\nRecent claims:")
			printClaimList(s.RecentClaims)
		}
		return nil
	},
}

// export command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export data as CSV",
}

var exportClaimsCmd = &cobra.Command{
	Use:   "claims",
	Short: "Export all claims",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("ExportClaims")
		if err != nil {
			return err
		}
		defer a.Close()

		dest, err := a.ExportClaims(cmd.Context())
		if err != nil {
			return fmt.Errorf("exporting claims: %w", err)
		}
		fmt.Printf("Exported to %s\n", dest)
		return nil
	},
}

var exportUsersCmd = &cobra.Command{
	Use:   "users",
	Short: "Export all users",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("ExportUsers")
		if err != nil {
			return err
		}
		defer a.Close()

		dest, err := a.ExportUsers(cmd.Context())
		if err != nil {
			return fmt.Errorf("exporting users: %w", err)
		}
		fmt.Printf("Exported to %s\n", dest)
		return nil
	},
}

var exportImagesCmd = &cobra.Command{
	Use:   "images",
	Short: "Export all images",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("ExportImages")
		if err != nil {
			return err
		}
		defer a.Close()

		dest, err := a.ExportImages(cmd.Context())
		if err != nil {
			return fmt.Errorf("exporting images: %w", err)
		}
		fmt.Printf("Exported to %s\n", dest)
		return nil
	},
}

func addClaimFieldFlags(cmd *cobra.Command) {
	cmd.Flags().String("location", "", "Claim location")
	cmd.Flags().Float64("lat", 0, "Latitude")
	cmd.Flags().Float64("lon", 0, "Longitude")
	cmd.Flags().String("status", string(model.StatusPending), "Claim status (PENDING|VERIFIED|REJECTED|RESOLVED)")
	cmd.Flags().String("severity", string(model.SeverityLow), "Severity (LOW|MEDIUM|HIGH|CRITICAL)")
	cmd.Flags().String("description", "", "Claim description")
	cmd.Flags().String("detection", string(model.DetectionManual), "Detection type (AUTOMATIC|MANUAL)")
	cmd.Flags().String("hash", "", "Opaque claim hash")
}

func init() {
	// config subcommands
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configListCmd)

	// claims subcommands
	claimsCmd.AddCommand(claimsListCmd)
	claimsListCmd.Flags().String("status", "", "Filter by status")
	claimsListCmd.Flags().String("severity", "", "Filter by severity")
	claimsListCmd.Flags().String("search", "", "Search location, description and owner email")
	claimsListCmd.Flags().Int("page", 1, "Page number")
	claimsListCmd.Flags().Int("page-size", 10, "Claims per page")
	claimsCmd.AddCommand(claimsGetCmd)
	claimsCmd.AddCommand(claimsByUserCmd)
	claimsCmd.AddCommand(claimsCreateCmd)
	claimsCreateCmd.Flags().Int64("user-id", 0, "Owning user ID")
	addClaimFieldFlags(claimsCreateCmd)
	claimsCmd.AddCommand(claimsUpdateCmd)
	addClaimFieldFlags(claimsUpdateCmd)
	claimsCmd.AddCommand(claimsDeleteCmd)

	// users subcommands
	usersCmd.AddCommand(usersListCmd)
	usersCmd.AddCommand(usersGetCmd)
	usersCmd.AddCommand(usersCreateCmd)
	usersCreateCmd.Flags().String("first-name", "", "First name")
	usersCreateCmd.Flags().String("last-name", "", "Last name")
	usersCmd.AddCommand(usersUpdateCmd)
	usersUpdateCmd.Flags().String("email", "", "Email address")
	usersUpdateCmd.Flags().String("first-name", "", "First name")
	usersUpdateCmd.Flags().String("last-name", "", "Last name")
	usersCmd.AddCommand(usersDeleteCmd)

	// images subcommands
	imagesCmd.AddCommand(imagesListCmd)
	imagesCmd.AddCommand(imagesGetCmd)
	imagesCmd.AddCommand(imagesByClaimCmd)
	imagesCmd.AddCommand(imagesCreateCmd)
	imagesCreateCmd.Flags().Int64("claim-id", 0, "Claim to attach the image to")
	imagesCreateCmd.Flags().String("url", "", "Image URL")
	imagesCreateCmd.Flags().String("hash", "", "Opaque image hash")
	imagesCreateCmd.Flags().String("timestamp", "", "Capture timestamp (RFC 3339)")
	imagesCmd.AddCommand(imagesUpdateCmd)
	imagesUpdateCmd.Flags().String("url", "", "Image URL")
	imagesUpdateCmd.Flags().String("hash", "", "Opaque image hash")
	imagesUpdateCmd.Flags().String("timestamp", "", "Capture timestamp (RFC 3339)")
	imagesCmd.AddCommand(imagesDeleteCmd)

	// export subcommands
	exportCmd.AddCommand(exportClaimsCmd)
	exportCmd.AddCommand(exportUsersCmd)
	exportCmd.AddCommand(exportImagesCmd)

	// stats flags
	statsCmd.Flags().Int("recent", 5, "Number of recent claims to show")

	// root commands
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
	rootCmd.AddCommand(registerCmd)
	registerCmd.Flags().String("first-name", "", "First name")
	registerCmd.Flags().String("last-name", "", "Last name")
	rootCmd.AddCommand(meCmd)
	rootCmd.AddCommand(claimsCmd)
	rootCmd.AddCommand(usersCmd)
	rootCmd.AddCommand(imagesCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(exportCmd)
}
