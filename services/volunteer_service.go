package services

import (
	"context"
	"errors"
	"sort"
	"time"
	"volunteerhub-backend/models"
	"volunteerhub-backend/repository"
	"volunteerhub-backend/utils/logger"
)

// VolunteerService owns the volunteer participation ledger: the append-only
// history, the per-city counters, and the views derived from them.
type VolunteerService struct {
	volunteerRepo   repository.VolunteerRepositoryInterface
	opportunityRepo repository.OpportunityRepositoryInterface
	config          *models.Config
	logger          logger.Logger
}

// NewVolunteerService creates a new volunteer service
func NewVolunteerService(volunteerRepo repository.VolunteerRepositoryInterface, opportunityRepo repository.OpportunityRepositoryInterface, cfg *models.Config, log logger.Logger) *VolunteerService {
	return &VolunteerService{
		volunteerRepo:   volunteerRepo,
		opportunityRepo: opportunityRepo,
		config:          cfg,
		logger:          log,
	}
}

// RegisterVolunteer creates a volunteer on first sign-in through the external
// identity provider. History, counters and profile extras start empty.
func (s *VolunteerService) RegisterVolunteer(ctx context.Context, req *models.RegisterVolunteer) (*models.Volunteer, error) {
	volunteer := &models.Volunteer{
		Name:                req.Name,
		Email:               req.Email,
		Phone:               req.Phone,
		ProfileImage:        req.ProfileImage,
		AboutMe:             "",
		PreferredCategories: []string{},
		Volunteering:        map[string]int{},
		History:             []models.HistoryEntry{},
	}

	return s.volunteerRepo.CreateVolunteer(ctx, volunteer)
}

// CheckEmail probes whether a volunteer exists for the given email, returning
// a minimal-disclosure reference when it does
func (s *VolunteerService) CheckEmail(ctx context.Context, email string) (*models.VolunteerRef, error) {
	volunteer, err := s.volunteerRepo.GetVolunteerByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	return &models.VolunteerRef{
		ID:    volunteer.ID,
		Name:  volunteer.Name,
		Email: volunteer.Email,
	}, nil
}

func (s *VolunteerService) GetVolunteerByID(ctx context.Context, id string) (*models.Volunteer, error) {
	return s.volunteerRepo.GetVolunteerByID(ctx, id)
}

func (s *VolunteerService) ListVolunteers(ctx context.Context) ([]*models.Volunteer, error) {
	return s.volunteerRepo.ListVolunteers(ctx)
}

// ListVolunteersByLocation returns volunteers with at least one completion in
// the given city. A key that exists with count 0 does not qualify.
func (s *VolunteerService) ListVolunteersByLocation(ctx context.Context, city string) ([]*models.Volunteer, error) {
	volunteers, err := s.volunteerRepo.ListVolunteers(ctx)
	if err != nil {
		return nil, err
	}

	active := []*models.Volunteer{}
	for _, v := range volunteers {
		if v.Volunteering[city] > 0 {
			active = append(active, v)
		}
	}
	return active, nil
}

// ListVolunteersByCategory returns volunteers whose preferred categories
// include the given category, matched exactly
func (s *VolunteerService) ListVolunteersByCategory(ctx context.Context, category string) ([]*models.Volunteer, error) {
	volunteers, err := s.volunteerRepo.ListVolunteers(ctx)
	if err != nil {
		return nil, err
	}

	matched := []*models.Volunteer{}
	for _, v := range volunteers {
		for _, c := range v.PreferredCategories {
			if c == category {
				matched = append(matched, v)
				break
			}
		}
	}
	return matched, nil
}

// RecordCompletion records that a volunteer completed an opportunity: appends
// a history entry and increments the counter for the opportunity's current
// location. Completing the same opportunity twice yields two entries.
//
// The counter update is a read-modify-write over the whole volunteer document
// with no guard; two concurrent completions for the same volunteer can
// last-write-wins each other and drop one increment. Kept that way on
// purpose — see DESIGN.md.
func (s *VolunteerService) RecordCompletion(ctx context.Context, volunteerID, opportunityID string) (*models.Volunteer, error) {
	volunteer, err := s.volunteerRepo.GetVolunteerByID(ctx, volunteerID)
	if err != nil {
		return nil, err
	}

	opportunity, err := s.opportunityRepo.GetOpportunityByID(ctx, opportunityID)
	if err != nil {
		return nil, err
	}

	volunteer.History = append(volunteer.History, models.HistoryEntry{
		OpportunityID: opportunity.ID,
		Date:          time.Now(),
	})

	if volunteer.Volunteering == nil {
		volunteer.Volunteering = map[string]int{}
	}
	volunteer.Volunteering[opportunity.Location]++

	if err := s.volunteerRepo.SaveVolunteer(ctx, volunteer); err != nil {
		return nil, err
	}

	s.logger.Infof("Recorded completion for volunteer %s: %s in %s", volunteer.ID, opportunity.ID, opportunity.Location)
	return volunteer, nil
}

// GetProfile assembles the aggregate profile view: the volunteer's fields,
// the derived event total, and the history with each opportunity reference
// resolved. A history entry whose opportunity was deleted resolves to a nil
// opportunity rather than failing the call.
func (s *VolunteerService) GetProfile(ctx context.Context, volunteerID string) (*models.VolunteerProfile, error) {
	volunteer, err := s.volunteerRepo.GetVolunteerByID(ctx, volunteerID)
	if err != nil {
		return nil, err
	}

	history := make([]models.ResolvedHistoryEntry, 0, len(volunteer.History))
	for _, entry := range volunteer.History {
		resolved := models.ResolvedHistoryEntry{Date: entry.Date}

		opportunity, err := s.opportunityRepo.GetOpportunityByID(ctx, entry.OpportunityID)
		if err != nil {
			var notFound *models.NotFoundError
			if !errors.As(err, &notFound) {
				return nil, err
			}
			s.logger.Warnf("Volunteer %s history references missing opportunity %s", volunteer.ID, entry.OpportunityID)
		} else {
			resolved.Opportunity = opportunity.Summary()
		}

		history = append(history, resolved)
	}

	return &models.VolunteerProfile{
		ID:                  volunteer.ID,
		Name:                volunteer.Name,
		Email:               volunteer.Email,
		Phone:               volunteer.Phone,
		AboutMe:             volunteer.AboutMe,
		PreferredCategories: volunteer.PreferredCategories,
		ProfileImage:        volunteer.ProfileImage,
		TotalEvents:         volunteer.TotalEvents(),
		EventsByCity:        volunteer.Volunteering,
		History:             history,
	}, nil
}

// EditProfile applies a partial profile update. Only fields present in the
// patch are overwritten; a present-but-empty value is a valid overwrite.
func (s *VolunteerService) EditProfile(ctx context.Context, volunteerID string, patch *models.VolunteerProfilePatch) (*models.Volunteer, error) {
	volunteer, err := s.volunteerRepo.GetVolunteerByID(ctx, volunteerID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if patch.Name != nil {
		volunteer.Name = *patch.Name
		updates["name"] = *patch.Name
	}
	if patch.AboutMe != nil {
		volunteer.AboutMe = *patch.AboutMe
		updates["about_me"] = *patch.AboutMe
	}
	if patch.PreferredCategories != nil {
		volunteer.PreferredCategories = *patch.PreferredCategories
		updates["preferred_categories"] = *patch.PreferredCategories
	}
	if patch.ProfileImage != nil {
		volunteer.ProfileImage = *patch.ProfileImage
		updates["profile_image"] = *patch.ProfileImage
	}

	if len(updates) == 0 {
		return volunteer, nil
	}

	if err := s.volunteerRepo.UpdateVolunteerFields(ctx, volunteerID, updates); err != nil {
		return nil, err
	}

	return volunteer, nil
}

// Leaderboard ranks volunteers by their completion count for one city,
// descending, excluding zero counts, truncated to the configured limit.
// Ties are broken by volunteer name ascending so the ordering is stable
// across calls.
func (s *VolunteerService) Leaderboard(ctx context.Context, city string) ([]*models.LeaderboardEntry, error) {
	volunteers, err := s.volunteerRepo.ListVolunteers(ctx)
	if err != nil {
		return nil, err
	}

	entries := []*models.LeaderboardEntry{}
	for _, v := range volunteers {
		if count := v.Volunteering[city]; count > 0 {
			entries = append(entries, &models.LeaderboardEntry{
				ID:          v.ID,
				Name:        v.Name,
				EventsCount: count,
			})
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].EventsCount != entries[j].EventsCount {
			return entries[i].EventsCount > entries[j].EventsCount
		}
		return entries[i].Name < entries[j].Name
	})

	limit := s.config.LeaderboardLimit
	if len(entries) > limit {
		entries = entries[:limit]
	}

	return entries, nil
}
