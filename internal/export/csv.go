package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"njia-admin/internal/model"
)

// WriteClaimsCSV renders claims as CSV, one row per claim with the
// owning user flattened in.
func WriteClaimsCSV(w io.Writer, claims []model.Claim) error {
	cw := csv.NewWriter(w)

	header := []string{"ID", "UserEmail", "Location", "Latitude", "Longitude", "Status", "Severity", "DetectionType", "Description", "Hash", "ConfirmationTime", "CreatedAt", "Images"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing claims header: %w", err)
	}

	for _, c := range claims {
		confirmation := ""
		if c.ConfirmationTime != nil {
			confirmation = c.ConfirmationTime.UTC().Format(time.RFC3339)
		}
		row := []string{
			strconv.FormatInt(c.ID, 10),
			c.User.Email,
			c.Location,
			strconv.FormatFloat(c.Latitude, 'f', -1, 64),
			strconv.FormatFloat(c.Longitude, 'f', -1, 64),
			string(c.Status),
			string(c.Severity),
			string(c.DetectionType),
			c.Description,
			c.Hash,
			confirmation,
			c.CreatedAt.UTC().Format(time.RFC3339),
			strconv.Itoa(len(c.Images)),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing claim %d: %w", c.ID, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteUsersCSV renders users as CSV.
func WriteUsersCSV(w io.Writer, users []model.User) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"ID", "Email", "FirstName", "LastName", "CreatedAt"}); err != nil {
		return fmt.Errorf("writing users header: %w", err)
	}
	for _, u := range users {
		row := []string{
			strconv.FormatInt(u.ID, 10),
			u.Email,
			u.FirstName,
			u.LastName,
			u.CreatedAt.UTC().Format(time.RFC3339),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing user %d: %w", u.ID, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteImagesCSV renders images as CSV.
func WriteImagesCSV(w io.Writer, images []model.Image) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"ID", "URL", "Hash", "Timestamp", "CreatedAt"}); err != nil {
		return fmt.Errorf("writing images header: %w", err)
	}
	for _, img := range images {
		row := []string{
			strconv.FormatInt(img.ID, 10),
			img.URL,
			img.Hash,
			img.Timestamp.UTC().Format(time.RFC3339),
			img.CreatedAt.UTC().Format(time.RFC3339),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing image %d: %w", img.ID, err)
		}
	}

	cw.Flush()
	return cw.Error()
}
