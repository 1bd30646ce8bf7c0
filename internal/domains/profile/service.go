package profile

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
	"github.com/spf13/viper"

	"github.com/lanreach/wifi-extender-agent/internal/constants"
	"github.com/lanreach/wifi-extender-agent/internal/entities"
	"github.com/lanreach/wifi-extender-agent/internal/errs"
)

const (
	keyUpstreamProfile = "profile:upstream"
	keyAPProfile       = "profile:ap"
	keyGoal            = "extender:goal"
)

// Service persists upstream/AP profiles and the desired extender goal so
// the daemon resumes its last configuration after a restart.
type Service struct {
	db       *badger.DB
	validate *validator.Validate
}

func NewService(db *badger.DB) *Service {
	return &Service{
		db:       db,
		validate: validator.New(),
	}
}

// LoadDocument reads the structured YAML configuration document. A
// missing file is not an error, the daemon then waits for profiles over
// the command channels.
func (s *Service) LoadDocument(path string) (document entities.ProfileDocument, found bool, err error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err = v.ReadInConfig(); err != nil {
		var notFoundErr viper.ConfigFileNotFoundError
		if errors.As(err, &notFoundErr) || strings.Contains(err.Error(), "no such file") {
			return entities.ProfileDocument{}, false, nil
		}

		return entities.ProfileDocument{}, false, fmt.Errorf("LoadDocument: %w", err)
	}

	if err = v.Unmarshal(&document); err != nil {
		return entities.ProfileDocument{}, false, fmt.Errorf("LoadDocument: %w", err)
	}

	if err = s.validate.Struct(document); err != nil {
		return entities.ProfileDocument{}, false,
			fmt.Errorf("LoadDocument: %w: %w", errs.ErrInvalidProfile, err)
	}

	return document, true, nil
}

func (s *Service) SaveUpstreamProfile(profile entities.UpstreamProfile) (err error) {
	if err = s.validate.Struct(profile); err != nil {
		return fmt.Errorf("SaveUpstreamProfile: %w: %w", errs.ErrInvalidProfile, err)
	}

	if err = s.set(keyUpstreamProfile, profile); err != nil {
		return fmt.Errorf("SaveUpstreamProfile: %w", err)
	}

	return nil
}

func (s *Service) LoadUpstreamProfile() (profile entities.UpstreamProfile, err error) {
	if err = s.get(keyUpstreamProfile, &profile); err != nil {
		return entities.UpstreamProfile{}, fmt.Errorf("LoadUpstreamProfile: %w", err)
	}

	return profile, nil
}

// SaveAPProfile persists the AP profile. Omitted addressing fields fall
// back to the standard extender subnet plan before validation.
func (s *Service) SaveAPProfile(profile entities.APProfile) (err error) {
	if lo.IsEmpty(profile.GatewayCIDR) {
		profile.GatewayCIDR = constants.DefaultAPAddress
	}
	if lo.IsEmpty(profile.DHCPRangeLo) {
		profile.DHCPRangeLo = constants.DefaultDHCPRangeLo
	}
	if lo.IsEmpty(profile.DHCPRangeHi) {
		profile.DHCPRangeHi = constants.DefaultDHCPRangeHi
	}
	if lo.IsEmpty(profile.DHCPLeaseTTL) {
		profile.DHCPLeaseTTL = constants.DefaultLeaseTime
	}

	if err = s.validate.Struct(profile); err != nil {
		return fmt.Errorf("SaveAPProfile: %w: %w", errs.ErrInvalidProfile, err)
	}

	if err = s.set(keyAPProfile, profile); err != nil {
		return fmt.Errorf("SaveAPProfile: %w", err)
	}

	return nil
}

func (s *Service) LoadAPProfile() (profile entities.APProfile, err error) {
	if err = s.get(keyAPProfile, &profile); err != nil {
		return entities.APProfile{}, fmt.Errorf("LoadAPProfile: %w", err)
	}

	return profile, nil
}

func (s *Service) SaveGoal(goal entities.ExtenderGoal) (err error) {
	if err = s.set(keyGoal, goal); err != nil {
		return fmt.Errorf("SaveGoal: %w", err)
	}

	return nil
}

// LoadGoal returns the persisted goal, defaulting to stopped when none
// was ever saved.
func (s *Service) LoadGoal() (goal entities.ExtenderGoal, err error) {
	if err = s.get(keyGoal, &goal); err != nil {
		if errors.Is(err, errs.ErrProfileNotFound) {
			return entities.GoalStopped, nil
		}

		return entities.GoalStopped, fmt.Errorf("LoadGoal: %w", err)
	}

	return goal, nil
}

func (s *Service) set(key string, value any) (err error) {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("set: %w", err)
	}

	if err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	}); err != nil {
		return fmt.Errorf("set: %w", err)
	}

	return nil
}

func (s *Service) get(key string, target any) (err error) {
	if err = s.db.View(func(txn *badger.Txn) error {
		item, getErr := txn.Get([]byte(key))
		if getErr != nil {
			if errors.Is(getErr, badger.ErrKeyNotFound) {
				return errs.ErrProfileNotFound
			}

			return getErr
		}

		return item.Value(func(data []byte) error {
			return json.Unmarshal(data, target)
		})
	}); err != nil {
		return fmt.Errorf("get: %w", err)
	}

	return nil
}
