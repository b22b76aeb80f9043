package services

import (
	"dejavu_backend/internal/models"
	"dejavu_backend/internal/repositories"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// In-memory фейки репозиториев. db игнорируется: контракт сервисов
// проверяется без реальной базы.

// --- users ---

type fakeUserRepo struct {
	users map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*models.User{}}
}

func (r *fakeUserRepo) Create(db *gorm.DB, user *models.User) error {
	for _, u := range r.users {
		if u.Email == user.Email {
			return repositories.ErrEmailAlreadyTaken
		}
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) FindByID(db *gorm.DB, id string) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) FindByEmail(db *gorm.DB, email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) ExistsByEmail(db *gorm.DB, email string) (bool, error) {
	_, err := r.FindByEmail(db, email)
	if err == nil {
		return true, nil
	}
	return false, nil
}

func (r *fakeUserRepo) Update(db *gorm.DB, user *models.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return repositories.ErrUserNotFound
	}
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

// --- clients ---

type fakeClientRepo struct {
	clients map[string]*models.Client
}

func newFakeClientRepo() *fakeClientRepo {
	return &fakeClientRepo{clients: map[string]*models.Client{}}
}

func (r *fakeClientRepo) Create(db *gorm.DB, client *models.Client) error {
	if client.ID == "" {
		client.ID = uuid.NewString()
	}
	cp := *client
	r.clients[client.ID] = &cp
	return nil
}

func (r *fakeClientRepo) FindByID(db *gorm.DB, id string) (*models.Client, error) {
	c, ok := r.clients[id]
	if !ok {
		return nil, repositories.ErrClientNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *fakeClientRepo) FindByUserID(db *gorm.DB, userID string) (*models.Client, error) {
	for _, c := range r.clients {
		if c.UserID != nil && *c.UserID == userID {
			cp := *c
			return &cp, nil
		}
	}
	return nil, repositories.ErrClientNotFound
}

// --- refresh tokens ---

type fakeRefreshTokenRepo struct {
	tokens map[string]*models.RefreshToken
}

func newFakeRefreshTokenRepo() *fakeRefreshTokenRepo {
	return &fakeRefreshTokenRepo{tokens: map[string]*models.RefreshToken{}}
}

func (r *fakeRefreshTokenRepo) Create(db *gorm.DB, token *models.RefreshToken) error {
	if token.ID == "" {
		token.ID = uuid.NewString()
	}
	cp := *token
	r.tokens[token.Token] = &cp
	return nil
}

func (r *fakeRefreshTokenRepo) FindByToken(db *gorm.DB, token string) (*models.RefreshToken, error) {
	rt, ok := r.tokens[token]
	if !ok {
		return nil, repositories.ErrRefreshTokenNotFound
	}
	cp := *rt
	return &cp, nil
}

func (r *fakeRefreshTokenRepo) DeleteByToken(db *gorm.DB, token string) error {
	delete(r.tokens, token)
	return nil
}

func (r *fakeRefreshTokenRepo) DeleteExpired(db *gorm.DB) error {
	return nil
}

// --- photographers ---

// Срез, а не map: FindAll обязан сохранять порядок вставки.
type fakePhotographerRepo struct {
	photographers []*models.Photographer
}

func newFakePhotographerRepo() *fakePhotographerRepo {
	return &fakePhotographerRepo{}
}

func (r *fakePhotographerRepo) Create(db *gorm.DB, ph *models.Photographer) error {
	if ph.ID == "" {
		ph.ID = uuid.NewString()
	}
	cp := *ph
	r.photographers = append(r.photographers, &cp)
	return nil
}

func (r *fakePhotographerRepo) FindByID(db *gorm.DB, id string) (*models.Photographer, error) {
	for _, ph := range r.photographers {
		if ph.ID == id {
			cp := *ph
			return &cp, nil
		}
	}
	return nil, repositories.ErrPhotographerNotFound
}

func (r *fakePhotographerRepo) FindByUserID(db *gorm.DB, userID string) (*models.Photographer, error) {
	for _, ph := range r.photographers {
		if ph.UserID != nil && *ph.UserID == userID {
			cp := *ph
			return &cp, nil
		}
	}
	return nil, repositories.ErrPhotographerNotFound
}

func (r *fakePhotographerRepo) FindAll(db *gorm.DB) ([]models.Photographer, error) {
	out := make([]models.Photographer, 0, len(r.photographers))
	for _, ph := range r.photographers {
		out = append(out, *ph)
	}
	return out, nil
}

func (r *fakePhotographerRepo) Update(db *gorm.DB, ph *models.Photographer) error {
	for i, existing := range r.photographers {
		if existing.ID == ph.ID {
			cp := *ph
			r.photographers[i] = &cp
			return nil
		}
	}
	return repositories.ErrPhotographerNotFound
}

func (r *fakePhotographerRepo) UpdateColumns(db *gorm.DB, id string, fields map[string]interface{}) error {
	for _, ph := range r.photographers {
		if ph.ID != id {
			continue
		}
		for column, value := range fields {
			switch column {
			case "name":
				ph.Name = value.(string)
			case "email":
				ph.Email = value.(string)
			case "city":
				ph.City = value.(string)
			case "instagram":
				ph.Instagram = value.(string)
			case "price_per_hour":
				ph.PricePerHour = value.(int)
			case "available_for_international":
				ph.AvailableForInternational = value.(bool)
			case "profile_picture":
				ph.ProfilePicture = value.(string)
			case "average_rating":
				ph.AverageRating = value.(float64)
			case "country_id":
				id := value.(string)
				ph.CountryID = &id
			case "niche_id":
				id := value.(string)
				ph.NicheID = &id
			}
		}
		return nil
	}
	return repositories.ErrPhotographerNotFound
}

func (r *fakePhotographerRepo) ReplaceLanguages(db *gorm.DB, ph *models.Photographer, languages []models.Language) error {
	for _, existing := range r.photographers {
		if existing.ID == ph.ID {
			existing.Languages = languages
			return nil
		}
	}
	return repositories.ErrPhotographerNotFound
}

func (r *fakePhotographerRepo) Delete(db *gorm.DB, ph *models.Photographer) error {
	for i, existing := range r.photographers {
		if existing.ID == ph.ID {
			r.photographers = append(r.photographers[:i], r.photographers[i+1:]...)
			return nil
		}
	}
	return repositories.ErrPhotographerNotFound
}

// --- reviews ---

type fakeReviewRepo struct {
	reviews []models.Review
	phRepo  *fakePhotographerRepo
}

func newFakeReviewRepo(phRepo *fakePhotographerRepo) *fakeReviewRepo {
	return &fakeReviewRepo{phRepo: phRepo}
}

func (r *fakeReviewRepo) Create(db *gorm.DB, review *models.Review) error {
	if review.ID == "" {
		review.ID = uuid.NewString()
	}
	r.reviews = append(r.reviews, *review)
	return nil
}

func (r *fakeReviewRepo) FindByPhotographer(db *gorm.DB, photographerID string) ([]models.Review, error) {
	var out []models.Review
	for _, review := range r.reviews {
		if review.PhotographerID == photographerID {
			out = append(out, review)
		}
	}
	return out, nil
}

func (r *fakeReviewRepo) RecalculateAverageRating(db *gorm.DB, photographerID string) (float64, error) {
	var sum, count int
	for _, review := range r.reviews {
		if review.PhotographerID == photographerID {
			sum += review.Rating
			count++
		}
	}
	average := 0.0
	if count > 0 {
		average = float64(sum) / float64(count)
	}
	err := r.phRepo.UpdateColumns(db, photographerID, map[string]interface{}{"average_rating": average})
	return average, err
}

// --- portfolio ---

type fakePortfolioRepo struct {
	items []models.PortfolioItem
}

func newFakePortfolioRepo() *fakePortfolioRepo {
	return &fakePortfolioRepo{}
}

func (r *fakePortfolioRepo) Create(db *gorm.DB, item *models.PortfolioItem) error {
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	r.items = append(r.items, *item)
	return nil
}

func (r *fakePortfolioRepo) FindByPhotographer(db *gorm.DB, photographerID string) ([]models.PortfolioItem, error) {
	var out []models.PortfolioItem
	for _, item := range r.items {
		if item.PhotographerID == photographerID {
			out = append(out, item)
		}
	}
	return out, nil
}

// --- lookups ---

type fakeLookupRepo struct {
	countries map[string]*models.Country
	niches    map[string]*models.Niche
	languages map[string]*models.Language
}

func newFakeLookupRepo() *fakeLookupRepo {
	return &fakeLookupRepo{
		countries: map[string]*models.Country{},
		niches:    map[string]*models.Niche{},
		languages: map[string]*models.Language{},
	}
}

func (r *fakeLookupRepo) FindOrCreateCountry(db *gorm.DB, name string) (*models.Country, error) {
	if c, ok := r.countries[name]; ok {
		return c, nil
	}
	c := &models.Country{Name: name}
	c.ID = uuid.NewString()
	r.countries[name] = c
	return c, nil
}

func (r *fakeLookupRepo) FindOrCreateNiche(db *gorm.DB, name string) (*models.Niche, error) {
	if n, ok := r.niches[name]; ok {
		return n, nil
	}
	n := &models.Niche{Name: name}
	n.ID = uuid.NewString()
	r.niches[name] = n
	return n, nil
}

func (r *fakeLookupRepo) FindOrCreateLanguages(db *gorm.DB, names []string) ([]models.Language, error) {
	out := make([]models.Language, 0, len(names))
	for _, name := range names {
		l, ok := r.languages[name]
		if !ok {
			l = &models.Language{Name: name}
			l.ID = uuid.NewString()
			r.languages[name] = l
		}
		out = append(out, *l)
	}
	return out, nil
}
