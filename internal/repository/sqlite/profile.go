package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/akash-insiders/community-hub/pkg/models"
)

func (r *SQLiteRepo) CreateProfile(ctx context.Context, p *models.Profile) (int64, error) {
	if p == nil {
		return 0, fmt.Errorf("profile is nil")
	}

	role := p.Role
	if role == "" {
		role = "member"
	}

	res, err := r.conn.Exec(ctx, `INSERT INTO users (name, email, role, company, location, home_address, bio, website_url, profile_photo, github_url, linkedin_url, twitter_url, telegram_url, hobbies) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.Name, p.Email, role,
		nullable(p.Company), nullable(p.Location), nullable(p.HomeAddress), nullable(p.Bio),
		nullable(p.WebsiteURL), nullable(p.ProfilePhoto), nullable(p.GithubURL),
		nullable(p.LinkedinURL), nullable(p.TwitterURL), nullable(p.TelegramURL), nullable(p.Hobbies))
	if err != nil {
		return 0, err
	}

	return res.LastInsertId()
}

func (r *SQLiteRepo) ListProfiles(ctx context.Context) ([]models.Profile, error) {
	rows, err := r.conn.QueryRows(ctx, `SELECT id, name, email, role, company, location, home_address, bio, website_url, profile_photo, github_url, linkedin_url, twitter_url, telegram_url, hobbies, created_at, updated_at FROM users ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Profile{}
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}

		out = append(out, *p)
	}

	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProfile(row rowScanner) (*models.Profile, error) {
	var p models.Profile
	var company, location, homeAddress, bio, websiteURL, profilePhoto, githubURL, linkedinURL, twitterURL, telegramURL, hobbies sql.NullString
	if err := row.Scan(&p.ID, &p.Name, &p.Email, &p.Role,
		&company, &location, &homeAddress, &bio,
		&websiteURL, &profilePhoto, &githubURL,
		&linkedinURL, &twitterURL, &telegramURL, &hobbies,
		&p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}

	p.Company = fromNull(company)
	p.Location = fromNull(location)
	p.HomeAddress = fromNull(homeAddress)
	p.Bio = fromNull(bio)
	p.WebsiteURL = fromNull(websiteURL)
	p.ProfilePhoto = fromNull(profilePhoto)
	p.GithubURL = fromNull(githubURL)
	p.LinkedinURL = fromNull(linkedinURL)
	p.TwitterURL = fromNull(twitterURL)
	p.TelegramURL = fromNull(telegramURL)
	p.Hobbies = fromNull(hobbies)

	return &p, nil
}
