package services

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mtorelli/linknest/internal/enrich"
	"github.com/mtorelli/linknest/internal/ingest"
	"github.com/mtorelli/linknest/internal/models"
	"github.com/mtorelli/linknest/internal/providers/directory"
	"github.com/mtorelli/linknest/internal/utils"
)

// ContactInput is a manual contact entry.
type ContactInput struct {
	FirstName         string `json:"first_name"`
	LastName          string `json:"last_name"`
	Role              string `json:"role"`
	Company           string `json:"company"`
	Industry          string `json:"industry"`
	Expertise         string `json:"expertise"`
	Seniority         string `json:"seniority"`
	CompanySize       string `json:"company_size"`
	ActivityLevel     string `json:"activity_level"`
	RecentProjects    string `json:"recent_projects"`
	KeyAchievements   string `json:"key_achievements"`
	MutualConnections int    `json:"mutual_connections"`
}

// ImportSummary reports one batch import.
type ImportSummary struct {
	Imported    int    `json:"imported"`
	SkippedRows int    `json:"skipped_rows"`
	Strategy    string `json:"strategy,omitempty"`
}

type ContactService interface {
	List(sess *models.SessionState) []models.Contact
	Add(sess *models.SessionState, in ContactInput) (*models.Contact, error)
	ImportCSV(sess *models.SessionState, data []byte) (*ImportSummary, error)
	ImportDirectory(ctx context.Context, sess *models.SessionState) (*ImportSummary, error)
	LoadSample(sess *models.SessionState) int
}

type contactService struct {
	recs RecommendationService
	dir  directory.Client // nil when no directory source is configured
}

func NewContactService(recs RecommendationService, dir directory.Client) ContactService {
	return &contactService{recs: recs, dir: dir}
}

func (s *contactService) List(sess *models.SessionState) []models.Contact {
	return sess.Contacts
}

func (s *contactService) Add(sess *models.SessionState, in ContactInput) (*models.Contact, error) {
	const op = "ContactService.Add"

	var missing []string
	for _, f := range []struct{ name, value string }{
		{"first_name", in.FirstName},
		{"last_name", in.LastName},
		{"role", in.Role},
		{"company", in.Company},
		{"industry", in.Industry},
	} {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return nil, utils.E(utils.CodeInvalidArgument, op, "required fields missing: "+strings.Join(missing, ", "), nil)
	}
	if in.MutualConnections < 0 {
		return nil, utils.E(utils.CodeInvalidArgument, op, "mutual_connections must not be negative", nil)
	}

	c := models.Contact{
		ID:                uuid.NewString(),
		FirstName:         strings.TrimSpace(in.FirstName),
		LastName:          strings.TrimSpace(in.LastName),
		Role:              strings.TrimSpace(in.Role),
		Company:           strings.TrimSpace(in.Company),
		Industry:          strings.TrimSpace(in.Industry),
		Expertise:         strings.TrimSpace(in.Expertise),
		Seniority:         in.Seniority,
		CompanySize:       defaultString(in.CompanySize, "Mid-size"),
		ActivityLevel:     defaultString(in.ActivityLevel, models.ActivityMedium),
		RecentProjects:    in.RecentProjects,
		KeyAchievements:   in.KeyAchievements,
		MutualConnections: in.MutualConnections,
	}
	enrich.Apply(&c)

	sess.Contacts = append(sess.Contacts, c)
	sess.UpdatedAt = time.Now().UTC()
	s.recs.Refresh(sess)
	return &sess.Contacts[len(sess.Contacts)-1], nil
}

func (s *contactService) ImportCSV(sess *models.SessionState, data []byte) (*ImportSummary, error) {
	const op = "ContactService.ImportCSV"

	if len(data) == 0 {
		return nil, utils.E(utils.CodeInvalidArgument, op, "empty upload", nil)
	}

	res, err := ingest.New().Parse(data)
	if err != nil {
		// The parse error text carries the required/found column detail the
		// user needs to fix their export; keep it intact.
		return nil, utils.E(utils.CodeInvalidArgument, op, err.Error(), err)
	}

	added := s.appendRecords(sess, res.Records)
	s.recs.Refresh(sess)
	return &ImportSummary{Imported: added, SkippedRows: res.SkippedRows, Strategy: res.Strategy}, nil
}

func (s *contactService) ImportDirectory(ctx context.Context, sess *models.SessionState) (*ImportSummary, error) {
	const op = "ContactService.ImportDirectory"

	if s.dir == nil {
		return nil, utils.E(utils.CodeUnavailable, op, "no directory source configured", directory.ErrUnavailable)
	}

	imp, err := s.dir.Fetch(ctx)
	if err != nil {
		// In-memory data stays untouched on any directory failure.
		return nil, utils.E(utils.CodeUnavailable, op, "directory import failed", err)
	}

	if imp.Profile != nil {
		applyProfileRecord(&sess.Profile, imp.Profile)
	}
	added := s.appendRecords(sess, imp.Connections)
	s.recs.Refresh(sess)
	return &ImportSummary{Imported: added}, nil
}

func (s *contactService) LoadSample(sess *models.SessionState) int {
	sess.Contacts = models.SampleContacts()
	sess.UpdatedAt = time.Now().UTC()
	s.recs.Refresh(sess)
	return len(sess.Contacts)
}

func (s *contactService) appendRecords(sess *models.SessionState, records []ingest.RawRecord) int {
	added := 0
	for _, rec := range records {
		c := contactFromRecord(rec)
		enrich.Apply(&c)
		sess.Contacts = append(sess.Contacts, c)
		added++
	}
	if added > 0 {
		sess.UpdatedAt = time.Now().UTC()
	}
	return added
}

// contactFromRecord maps canonical ingest columns onto a Contact. Anything
// the export does not carry stays at its zero value and is filled by
// enrichment or by display defaults.
func contactFromRecord(rec ingest.RawRecord) models.Contact {
	mutual, _ := strconv.Atoi(rec[ingest.ColMutual])
	if mutual < 0 {
		mutual = 0
	}
	return models.Contact{
		ID:                uuid.NewString(),
		FirstName:         rec[ingest.ColFirstName],
		LastName:          rec[ingest.ColLastName],
		Role:              rec[ingest.ColPosition],
		Company:           rec[ingest.ColCompany],
		Industry:          rec[ingest.ColIndustry],
		Expertise:         rec[ingest.ColExpertise],
		Seniority:         rec[ingest.ColSeniority],
		CompanySize:       defaultString(rec[ingest.ColCompanySize], "Mid-size"),
		ActivityLevel:     defaultString(rec[ingest.ColActivity], models.ActivityMedium),
		RecentProjects:    rec[ingest.ColProjects],
		KeyAchievements:   rec[ingest.ColAchievements],
		MutualConnections: mutual,
		Email:             rec[ingest.ColEmail],
		ProfileURL:        rec[ingest.ColURL],
		ConnectedOn:       rec[ingest.ColConnectedOn],
	}
}

func applyProfileRecord(p *models.UserProfile, rec ingest.RawRecord) {
	if name := strings.TrimSpace(rec[ingest.ColFirstName] + " " + rec[ingest.ColLastName]); name != "" {
		p.Name = name
	}
	if role := rec[ingest.ColPosition]; role != "" {
		p.CurrentRole = role
	}
	if industry := rec[ingest.ColIndustry]; industry != "" {
		p.Industry = industry
	}
	if company := rec[ingest.ColCompany]; company != "" {
		p.Company = company
	}
}

func defaultString(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
