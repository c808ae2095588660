package content

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// Repository provides persistence for the site content collections.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a repository backed by database/sql.
func NewRepository(db *sql.DB) *Repository {
	if db == nil {
		panic("content: db required")
	}
	return &Repository{db: db}
}

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func rowsDeleted(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("content: rows affected: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// --- services ---

const serviceColumns = `id, slug, title, description, icon_name, image_path,
	features, price, sort_order, created_at, updated_at`

func scanService(row interface{ Scan(...any) error }) (*Service, error) {
	var s Service
	var icon, image, price sql.NullString
	err := row.Scan(&s.ID, &s.Slug, &s.Title, &s.Description, &icon, &image,
		&s.Features, &price, &s.SortOrder, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	s.IconName = icon.String
	s.ImagePath = image.String
	s.Price = price.String
	return &s, nil
}

// ListServices returns all services in display order.
func (r *Repository) ListServices(ctx context.Context) ([]Service, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+serviceColumns+` FROM services ORDER BY sort_order, id`)
	if err != nil {
		return nil, fmt.Errorf("content: list services: %w", err)
	}
	defer rows.Close()

	out := []Service{}
	for rows.Next() {
		s, err := scanService(rows)
		if err != nil {
			return nil, fmt.Errorf("content: scan service: %w", err)
		}
		out = append(out, *s)
	}
	return out, rows.Err()
}

// GetService loads one service by id.
func (r *Repository) GetService(ctx context.Context, id int64) (*Service, error) {
	s, err := scanService(r.db.QueryRowContext(ctx,
		`SELECT `+serviceColumns+` FROM services WHERE id = ?`, id))
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("content: get service: %w", err)
	}
	return s, nil
}

// CreateService inserts a new service.
func (r *Repository) CreateService(ctx context.Context, in *ServiceInput) (*Service, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO services (slug, title, description, icon_name, image_path, features, price, sort_order)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		in.Slug, in.Title, in.Description, in.IconName, in.ImagePath, in.Features, in.Price, in.SortOrder)
	if isUniqueViolation(err) {
		return nil, ErrDuplicateSlug
	}
	if err != nil {
		return nil, fmt.Errorf("content: create service: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("content: last insert id: %w", err)
	}
	return r.GetService(ctx, id)
}

// UpdateService replaces an existing service.
func (r *Repository) UpdateService(ctx context.Context, id int64, in *ServiceInput) (*Service, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	res, err := r.db.ExecContext(ctx,
		`UPDATE services SET slug = ?, title = ?, description = ?, icon_name = ?, image_path = ?,
		 features = ?, price = ?, sort_order = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		in.Slug, in.Title, in.Description, in.IconName, in.ImagePath, in.Features, in.Price, in.SortOrder, id)
	if isUniqueViolation(err) {
		return nil, ErrDuplicateSlug
	}
	if err != nil {
		return nil, fmt.Errorf("content: update service: %w", err)
	}
	if err := rowsDeleted(res); err != nil {
		return nil, err
	}
	return r.GetService(ctx, id)
}

// DeleteService removes a service by id.
func (r *Repository) DeleteService(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM services WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("content: delete service: %w", err)
	}
	return rowsDeleted(res)
}

// --- formations ---

const formationColumns = `id, slug, title, subtitle, description, level, duration,
	participants, price, features, image_path, badge, sort_order, created_at, updated_at`

func scanFormation(row interface{ Scan(...any) error }) (*Formation, error) {
	var f Formation
	var subtitle, level, duration, participants, price, image, badge sql.NullString
	err := row.Scan(&f.ID, &f.Slug, &f.Title, &subtitle, &f.Description, &level, &duration,
		&participants, &price, &f.Features, &image, &badge, &f.SortOrder, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		return nil, err
	}
	f.Subtitle = subtitle.String
	f.Level = level.String
	f.Duration = duration.String
	f.Participants = participants.String
	f.Price = price.String
	f.ImagePath = image.String
	f.Badge = badge.String
	return &f, nil
}

// ListFormations returns all formations in display order.
func (r *Repository) ListFormations(ctx context.Context) ([]Formation, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+formationColumns+` FROM formations ORDER BY sort_order, id`)
	if err != nil {
		return nil, fmt.Errorf("content: list formations: %w", err)
	}
	defer rows.Close()

	out := []Formation{}
	for rows.Next() {
		f, err := scanFormation(rows)
		if err != nil {
			return nil, fmt.Errorf("content: scan formation: %w", err)
		}
		out = append(out, *f)
	}
	return out, rows.Err()
}

// GetFormation loads one formation by id.
func (r *Repository) GetFormation(ctx context.Context, id int64) (*Formation, error) {
	f, err := scanFormation(r.db.QueryRowContext(ctx,
		`SELECT `+formationColumns+` FROM formations WHERE id = ?`, id))
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("content: get formation: %w", err)
	}
	return f, nil
}

// CreateFormation inserts a new formation.
func (r *Repository) CreateFormation(ctx context.Context, in *FormationInput) (*Formation, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO formations (slug, title, subtitle, description, level, duration,
		 participants, price, features, image_path, badge, sort_order)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		in.Slug, in.Title, in.Subtitle, in.Description, in.Level, in.Duration,
		in.Participants, in.Price, in.Features, in.ImagePath, in.Badge, in.SortOrder)
	if isUniqueViolation(err) {
		return nil, ErrDuplicateSlug
	}
	if err != nil {
		return nil, fmt.Errorf("content: create formation: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("content: last insert id: %w", err)
	}
	return r.GetFormation(ctx, id)
}

// UpdateFormation replaces an existing formation.
func (r *Repository) UpdateFormation(ctx context.Context, id int64, in *FormationInput) (*Formation, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	res, err := r.db.ExecContext(ctx,
		`UPDATE formations SET slug = ?, title = ?, subtitle = ?, description = ?, level = ?,
		 duration = ?, participants = ?, price = ?, features = ?, image_path = ?, badge = ?,
		 sort_order = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		in.Slug, in.Title, in.Subtitle, in.Description, in.Level, in.Duration,
		in.Participants, in.Price, in.Features, in.ImagePath, in.Badge, in.SortOrder, id)
	if isUniqueViolation(err) {
		return nil, ErrDuplicateSlug
	}
	if err != nil {
		return nil, fmt.Errorf("content: update formation: %w", err)
	}
	if err := rowsDeleted(res); err != nil {
		return nil, err
	}
	return r.GetFormation(ctx, id)
}

// DeleteFormation removes a formation by id.
func (r *Repository) DeleteFormation(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM formations WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("content: delete formation: %w", err)
	}
	return rowsDeleted(res)
}

// --- team members ---

const teamMemberColumns = `id, slug, name, role, speciality, image_path, experience,
	description, certifications, achievements, social_instagram, social_linkedin,
	social_email, sort_order, created_at, updated_at`

func scanTeamMember(row interface{ Scan(...any) error }) (*TeamMember, error) {
	var m TeamMember
	var speciality, image, experience, description, instagram, linkedin, email sql.NullString
	err := row.Scan(&m.ID, &m.Slug, &m.Name, &m.Role, &speciality, &image, &experience,
		&description, &m.Certifications, &m.Achievements, &instagram, &linkedin,
		&email, &m.SortOrder, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, err
	}
	m.Speciality = speciality.String
	m.ImagePath = image.String
	m.Experience = experience.String
	m.Description = description.String
	m.SocialInstagram = instagram.String
	m.SocialLinkedin = linkedin.String
	m.SocialEmail = email.String
	return &m, nil
}

// ListTeamMembers returns all team members in display order.
func (r *Repository) ListTeamMembers(ctx context.Context) ([]TeamMember, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+teamMemberColumns+` FROM team_members ORDER BY sort_order, id`)
	if err != nil {
		return nil, fmt.Errorf("content: list team members: %w", err)
	}
	defer rows.Close()

	out := []TeamMember{}
	for rows.Next() {
		m, err := scanTeamMember(rows)
		if err != nil {
			return nil, fmt.Errorf("content: scan team member: %w", err)
		}
		out = append(out, *m)
	}
	return out, rows.Err()
}

// GetTeamMember loads one team member by id.
func (r *Repository) GetTeamMember(ctx context.Context, id int64) (*TeamMember, error) {
	m, err := scanTeamMember(r.db.QueryRowContext(ctx,
		`SELECT `+teamMemberColumns+` FROM team_members WHERE id = ?`, id))
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("content: get team member: %w", err)
	}
	return m, nil
}

// CreateTeamMember inserts a new team member.
func (r *Repository) CreateTeamMember(ctx context.Context, in *TeamMemberInput) (*TeamMember, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO team_members (slug, name, role, speciality, image_path, experience,
		 description, certifications, achievements, social_instagram, social_linkedin,
		 social_email, sort_order)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		in.Slug, in.Name, in.Role, in.Speciality, in.ImagePath, in.Experience,
		in.Description, in.Certifications, in.Achievements, in.SocialInstagram,
		in.SocialLinkedin, in.SocialEmail, in.SortOrder)
	if isUniqueViolation(err) {
		return nil, ErrDuplicateSlug
	}
	if err != nil {
		return nil, fmt.Errorf("content: create team member: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("content: last insert id: %w", err)
	}
	return r.GetTeamMember(ctx, id)
}

// UpdateTeamMember replaces an existing team member.
func (r *Repository) UpdateTeamMember(ctx context.Context, id int64, in *TeamMemberInput) (*TeamMember, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	res, err := r.db.ExecContext(ctx,
		`UPDATE team_members SET slug = ?, name = ?, role = ?, speciality = ?, image_path = ?,
		 experience = ?, description = ?, certifications = ?, achievements = ?,
		 social_instagram = ?, social_linkedin = ?, social_email = ?, sort_order = ?,
		 updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		in.Slug, in.Name, in.Role, in.Speciality, in.ImagePath, in.Experience,
		in.Description, in.Certifications, in.Achievements, in.SocialInstagram,
		in.SocialLinkedin, in.SocialEmail, in.SortOrder, id)
	if isUniqueViolation(err) {
		return nil, ErrDuplicateSlug
	}
	if err != nil {
		return nil, fmt.Errorf("content: update team member: %w", err)
	}
	if err := rowsDeleted(res); err != nil {
		return nil, err
	}
	return r.GetTeamMember(ctx, id)
}

// DeleteTeamMember removes a team member by id.
func (r *Repository) DeleteTeamMember(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM team_members WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("content: delete team member: %w", err)
	}
	return rowsDeleted(res)
}

// --- testimonials ---

const testimonialColumns = `id, slug, name, role, image_path, rating, text, service,
	sort_order, created_at, updated_at`

func scanTestimonial(row interface{ Scan(...any) error }) (*Testimonial, error) {
	var tm Testimonial
	var role, image, service sql.NullString
	err := row.Scan(&tm.ID, &tm.Slug, &tm.Name, &role, &image, &tm.Rating, &tm.Text,
		&service, &tm.SortOrder, &tm.CreatedAt, &tm.UpdatedAt)
	if err != nil {
		return nil, err
	}
	tm.Role = role.String
	tm.ImagePath = image.String
	tm.Service = service.String
	return &tm, nil
}

// ListTestimonials returns all testimonials in display order.
func (r *Repository) ListTestimonials(ctx context.Context) ([]Testimonial, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+testimonialColumns+` FROM testimonials ORDER BY sort_order, id`)
	if err != nil {
		return nil, fmt.Errorf("content: list testimonials: %w", err)
	}
	defer rows.Close()

	out := []Testimonial{}
	for rows.Next() {
		tm, err := scanTestimonial(rows)
		if err != nil {
			return nil, fmt.Errorf("content: scan testimonial: %w", err)
		}
		out = append(out, *tm)
	}
	return out, rows.Err()
}

// GetTestimonial loads one testimonial by id.
func (r *Repository) GetTestimonial(ctx context.Context, id int64) (*Testimonial, error) {
	tm, err := scanTestimonial(r.db.QueryRowContext(ctx,
		`SELECT `+testimonialColumns+` FROM testimonials WHERE id = ?`, id))
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("content: get testimonial: %w", err)
	}
	return tm, nil
}

// CreateTestimonial inserts a new testimonial.
func (r *Repository) CreateTestimonial(ctx context.Context, in *TestimonialInput) (*Testimonial, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO testimonials (slug, name, role, image_path, rating, text, service, sort_order)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		in.Slug, in.Name, in.Role, in.ImagePath, in.Rating, in.Text, in.Service, in.SortOrder)
	if isUniqueViolation(err) {
		return nil, ErrDuplicateSlug
	}
	if err != nil {
		return nil, fmt.Errorf("content: create testimonial: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("content: last insert id: %w", err)
	}
	return r.GetTestimonial(ctx, id)
}

// UpdateTestimonial replaces an existing testimonial.
func (r *Repository) UpdateTestimonial(ctx context.Context, id int64, in *TestimonialInput) (*Testimonial, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	res, err := r.db.ExecContext(ctx,
		`UPDATE testimonials SET slug = ?, name = ?, role = ?, image_path = ?, rating = ?,
		 text = ?, service = ?, sort_order = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		in.Slug, in.Name, in.Role, in.ImagePath, in.Rating, in.Text, in.Service, in.SortOrder, id)
	if isUniqueViolation(err) {
		return nil, ErrDuplicateSlug
	}
	if err != nil {
		return nil, fmt.Errorf("content: update testimonial: %w", err)
	}
	if err := rowsDeleted(res); err != nil {
		return nil, err
	}
	return r.GetTestimonial(ctx, id)
}

// DeleteTestimonial removes a testimonial by id.
func (r *Repository) DeleteTestimonial(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM testimonials WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("content: delete testimonial: %w", err)
	}
	return rowsDeleted(res)
}

// --- faqs ---

const faqColumns = `id, slug, question, answer, category, sort_order, created_at, updated_at`

func scanFAQ(row interface{ Scan(...any) error }) (*FAQ, error) {
	var f FAQ
	var category sql.NullString
	err := row.Scan(&f.ID, &f.Slug, &f.Question, &f.Answer, &category,
		&f.SortOrder, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		return nil, err
	}
	f.Category = category.String
	return &f, nil
}

// ListFAQs returns all FAQ entries in display order.
func (r *Repository) ListFAQs(ctx context.Context) ([]FAQ, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+faqColumns+` FROM faqs ORDER BY sort_order, id`)
	if err != nil {
		return nil, fmt.Errorf("content: list faqs: %w", err)
	}
	defer rows.Close()

	out := []FAQ{}
	for rows.Next() {
		f, err := scanFAQ(rows)
		if err != nil {
			return nil, fmt.Errorf("content: scan faq: %w", err)
		}
		out = append(out, *f)
	}
	return out, rows.Err()
}

// GetFAQ loads one FAQ entry by id.
func (r *Repository) GetFAQ(ctx context.Context, id int64) (*FAQ, error) {
	f, err := scanFAQ(r.db.QueryRowContext(ctx,
		`SELECT `+faqColumns+` FROM faqs WHERE id = ?`, id))
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("content: get faq: %w", err)
	}
	return f, nil
}

// CreateFAQ inserts a new FAQ entry.
func (r *Repository) CreateFAQ(ctx context.Context, in *FAQInput) (*FAQ, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO faqs (slug, question, answer, category, sort_order)
		 VALUES (?, ?, ?, ?, ?)`,
		in.Slug, in.Question, in.Answer, in.Category, in.SortOrder)
	if isUniqueViolation(err) {
		return nil, ErrDuplicateSlug
	}
	if err != nil {
		return nil, fmt.Errorf("content: create faq: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("content: last insert id: %w", err)
	}
	return r.GetFAQ(ctx, id)
}

// UpdateFAQ replaces an existing FAQ entry.
func (r *Repository) UpdateFAQ(ctx context.Context, id int64, in *FAQInput) (*FAQ, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	res, err := r.db.ExecContext(ctx,
		`UPDATE faqs SET slug = ?, question = ?, answer = ?, category = ?, sort_order = ?,
		 updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		in.Slug, in.Question, in.Answer, in.Category, in.SortOrder, id)
	if isUniqueViolation(err) {
		return nil, ErrDuplicateSlug
	}
	if err != nil {
		return nil, fmt.Errorf("content: update faq: %w", err)
	}
	if err := rowsDeleted(res); err != nil {
		return nil, err
	}
	return r.GetFAQ(ctx, id)
}

// DeleteFAQ removes an FAQ entry by id.
func (r *Repository) DeleteFAQ(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM faqs WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("content: delete faq: %w", err)
	}
	return rowsDeleted(res)
}

// --- gallery ---

const galleryColumns = `id, slug, title, image_path, category, description,
	sort_order, created_at, updated_at`

func scanGalleryItem(row interface{ Scan(...any) error }) (*GalleryItem, error) {
	var g GalleryItem
	var category, description sql.NullString
	err := row.Scan(&g.ID, &g.Slug, &g.Title, &g.ImagePath, &category, &description,
		&g.SortOrder, &g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		return nil, err
	}
	g.Category = category.String
	g.Description = description.String
	return &g, nil
}

// ListGalleryItems returns all gallery items in display order.
func (r *Repository) ListGalleryItems(ctx context.Context) ([]GalleryItem, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+galleryColumns+` FROM gallery_items ORDER BY sort_order, id`)
	if err != nil {
		return nil, fmt.Errorf("content: list gallery items: %w", err)
	}
	defer rows.Close()

	out := []GalleryItem{}
	for rows.Next() {
		g, err := scanGalleryItem(rows)
		if err != nil {
			return nil, fmt.Errorf("content: scan gallery item: %w", err)
		}
		out = append(out, *g)
	}
	return out, rows.Err()
}

// GetGalleryItem loads one gallery item by id.
func (r *Repository) GetGalleryItem(ctx context.Context, id int64) (*GalleryItem, error) {
	g, err := scanGalleryItem(r.db.QueryRowContext(ctx,
		`SELECT `+galleryColumns+` FROM gallery_items WHERE id = ?`, id))
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("content: get gallery item: %w", err)
	}
	return g, nil
}

// CreateGalleryItem inserts a new gallery item.
func (r *Repository) CreateGalleryItem(ctx context.Context, in *GalleryItemInput) (*GalleryItem, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO gallery_items (slug, title, image_path, category, description, sort_order)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		in.Slug, in.Title, in.ImagePath, in.Category, in.Description, in.SortOrder)
	if isUniqueViolation(err) {
		return nil, ErrDuplicateSlug
	}
	if err != nil {
		return nil, fmt.Errorf("content: create gallery item: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("content: last insert id: %w", err)
	}
	return r.GetGalleryItem(ctx, id)
}

// UpdateGalleryItem replaces an existing gallery item.
func (r *Repository) UpdateGalleryItem(ctx context.Context, id int64, in *GalleryItemInput) (*GalleryItem, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	res, err := r.db.ExecContext(ctx,
		`UPDATE gallery_items SET slug = ?, title = ?, image_path = ?, category = ?,
		 description = ?, sort_order = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		in.Slug, in.Title, in.ImagePath, in.Category, in.Description, in.SortOrder, id)
	if isUniqueViolation(err) {
		return nil, ErrDuplicateSlug
	}
	if err != nil {
		return nil, fmt.Errorf("content: update gallery item: %w", err)
	}
	if err := rowsDeleted(res); err != nil {
		return nil, err
	}
	return r.GetGalleryItem(ctx, id)
}

// DeleteGalleryItem removes a gallery item by id.
func (r *Repository) DeleteGalleryItem(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM gallery_items WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("content: delete gallery item: %w", err)
	}
	return rowsDeleted(res)
}
