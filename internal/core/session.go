package core

import (
	"context"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"upgrade-editor/internal/ports"
	"upgrade-editor/internal/types"
)

const (
	DefaultMaxVerifyPasses = 8
	generalDescription     = "See general description for details"
)

type SessionConfig struct {
	// Part is nil when nothing is selected; every operation is then a no-op.
	Part            ports.PartPort
	Handler         ports.UpgradeHandlerPort
	Baseline        Baseline
	Fields          types.PersistedFields
	Overrides       types.Overrides
	MaxVerifyPasses int
}

// Session is one "edit this part" interaction. It owns the disabled set
// and catalog for its lifetime and flushes them back to the persisted
// fields when it ends. A Session is not safe for concurrent use, and its
// operations must not be re-entered from module callbacks.
type Session struct {
	id        string
	part      ports.PartPort
	handler   ports.UpgradeHandlerPort
	sync      ConsumerSync
	baseline  Baseline
	fields    types.PersistedFields
	overrides types.Overrides
	ignore    NameSet
	disabled  NameSet
	catalog   []types.CatalogUpgrade
	maxPasses int
	state     types.SessionState
	logger    zerolog.Logger
}

// OpenSession hydrates a session from the persisted fields. With always
// enable active the session starts with nothing disabled.
func OpenSession(ctx context.Context, cfg SessionConfig) (*Session, error) {
	if cfg.Handler == nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("upgrade handler is required")
	}
	maxPasses := cfg.MaxVerifyPasses
	if maxPasses <= 0 {
		maxPasses = DefaultMaxVerifyPasses
	}
	s := &Session{
		id:        uuid.NewString(),
		part:      cfg.Part,
		handler:   cfg.Handler,
		sync:      NewConsumerSync(cfg.Handler),
		baseline:  cfg.Baseline,
		fields:    cfg.Fields,
		overrides: cfg.Overrides,
		ignore:    ParseLine(cfg.Fields.UpgradesToIgnore, types.ListSeparator),
		maxPasses: maxPasses,
		state:     types.SessionStateIdle,
	}
	s.logger = sessionLogger(ctx, s.id, cfg.Part)
	ctx = s.logger.WithContext(ctx)
	assert.NotEmpty(ctx, s.id, "session id must be set")

	s.handler.SetAllEnabled(s.overrides.AlwaysEnable)
	if s.overrides.AlwaysEnable {
		s.disabled = NewNameSet()
	} else {
		s.disabled = ParseLine(cfg.Fields.DisabledUpgrades, types.ListSeparator)
	}
	if s.part == nil {
		log.Ctx(ctx).Debug().Msg("no part selected")
		return s, nil
	}

	s.catalog = BuildCatalog(s.part, s.ignore, s.disabled, s.handler)
	names := catalogNames(s.catalog)
	s.disabled.Retain(names.Has)
	s.hydrate(ctx)

	log.Ctx(ctx).Debug().
		Int("catalog", len(s.catalog)).
		Strs("disabled", s.disabled.Names()).
		Bool("always_enable", s.overrides.AlwaysEnable).
		Msg("editing session hydrated")
	return s, nil
}

func sessionLogger(ctx context.Context, id string, part ports.PartPort) zerolog.Logger {
	base := log.Ctx(ctx)
	if base.GetLevel() == zerolog.Disabled {
		base = &log.Logger
	}
	builder := base.With().Str("session", id)
	if part != nil {
		builder = builder.Str("part", part.Name())
	}
	return builder.Logger()
}

func (s *Session) hydrate(ctx context.Context) {
	if s.disabled.Len() == 0 && !s.overrides.AlwaysEnable && !s.drifted() {
		return
	}
	for _, upgrade := range s.catalog {
		s.handler.SetEnabled(upgrade.Name, s.expectedEnabled(upgrade.Name))
	}
	s.resync(ctx)
	allDisabled := s.disabled.Len() > 0 && s.disabled.Len() >= len(s.catalog)
	if allDisabled {
		// Nothing left applies, so regeneration cannot flush stale deltas.
		s.sync.CorrectCachedDeltas(ctx, s.part, s.baseline, s.catalog, s.disabled)
	} else {
		for _, upgrade := range s.catalog {
			s.regenerate(ctx, upgrade.Name)
		}
	}
	s.verify(ctx)
}

func (s *Session) drifted() bool {
	for _, upgrade := range s.catalog {
		if s.handler.IsEnabled(upgrade.Name) != s.expectedEnabled(upgrade.Name) {
			return true
		}
	}
	return false
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) State() types.SessionState {
	return s.state
}

func (s *Session) Overrides() types.Overrides {
	return s.overrides
}

// Disabled returns the names currently disabled, in the order they were
// disabled.
func (s *Session) Disabled() []string {
	return s.disabled.Names()
}

// Catalog returns the UI view of every visible upgrade.
func (s *Session) Catalog() []types.CatalogEntry {
	if s.part == nil {
		return nil
	}
	modules := s.part.Modules()
	entries := make([]types.CatalogEntry, 0, len(s.catalog))
	for _, upgrade := range s.catalog {
		entry := types.CatalogEntry{
			Name:             upgrade.Name,
			Title:            upgrade.Name,
			CurrentlyEnabled: !s.disabled.Has(upgrade.Name),
		}
		if meta, ok := s.handler.Metadata(upgrade.Name); ok {
			if meta.Title != "" {
				entry.Title = meta.Title
			}
			entry.Description = meta.Description
		}
		for _, index := range upgrade.Modules {
			if index >= len(modules) {
				continue
			}
			entry.AffectedModules = append(entry.AffectedModules, affectedModule(modules[index], upgrade.Name))
		}
		entries = append(entries, entry)
	}
	return entries
}

func affectedModule(module ports.ModulePort, name string) string {
	for _, declared := range module.DeclaredUpgrades() {
		if declared.Name == name && declared.Description != "" {
			return module.DisplayName() + " => " + declared.Description
		}
	}
	return generalDescription
}

// Modules reports the live state of every module on the part.
func (s *Session) Modules() []types.ModuleSnapshot {
	if s.part == nil {
		return nil
	}
	var snapshots []types.ModuleSnapshot
	for _, module := range s.part.Modules() {
		snapshots = append(snapshots, module.Snapshot())
	}
	return snapshots
}

// Toggle enables or disables a single upgrade for this part and brings
// every module back in line with the disabled set.
func (s *Session) Toggle(ctx context.Context, name string, enabled bool) error {
	ctx, err := s.begin(ctx)
	if err != nil {
		return err
	}
	defer s.finish()
	if s.part == nil {
		return nil
	}
	if !s.inCatalog(name) && !s.ignore.Has(name) {
		log.Ctx(ctx).Debug().Str("upgrade", name).Msg("toggle for unknown upgrade ignored")
		return nil
	}
	if !enabled && s.overrides.AlwaysEnable {
		log.Ctx(ctx).Debug().Str("upgrade", name).Msg("always enable active, disable ignored")
		return nil
	}
	if s.disabled.Has(name) == !enabled && s.handler.IsEnabled(name) == enabled {
		return nil
	}

	s.state = types.SessionStateMutating
	s.handler.SetEnabled(name, enabled)
	if enabled {
		s.disabled.Remove(name)
	} else {
		s.disabled.Add(name)
	}

	s.resync(ctx)
	s.regenerate(ctx, name)
	s.verify(ctx)

	log.Ctx(ctx).Debug().
		Str("upgrade", name).
		Bool("enabled", enabled).
		Strs("disabled", s.disabled.Names()).
		Msg("upgrade toggled")
	return nil
}

// SetEnableAll sets every catalog upgrade to target. Individual toggles
// keep working afterwards.
func (s *Session) SetEnableAll(ctx context.Context, target bool) error {
	ctx, err := s.begin(ctx)
	if err != nil {
		return err
	}
	defer s.finish()
	if !target && s.overrides.AlwaysEnable {
		log.Ctx(ctx).Debug().Msg("always enable active, disable all ignored")
		return nil
	}
	s.overrides.EnableAll = target
	if s.part == nil {
		return nil
	}

	s.state = types.SessionStateMutating
	for _, upgrade := range s.catalog {
		s.handler.SetEnabled(upgrade.Name, target)
		if target {
			s.disabled.Remove(upgrade.Name)
		} else {
			s.disabled.Add(upgrade.Name)
		}
	}
	s.resync(ctx)
	for _, upgrade := range s.catalog {
		s.regenerate(ctx, upgrade.Name)
	}
	s.verify(ctx)
	return nil
}

// SetAlwaysEnable switches the hard override. While active the handler
// reports every unlocked upgrade as enabled and the disabled set stays
// empty.
func (s *Session) SetAlwaysEnable(ctx context.Context, active bool) error {
	ctx, err := s.begin(ctx)
	if err != nil {
		return err
	}
	defer s.finish()
	s.overrides.AlwaysEnable = active
	s.handler.SetAllEnabled(active)
	if s.part == nil {
		return nil
	}
	if !active {
		s.verify(ctx)
		return nil
	}

	s.state = types.SessionStateMutating
	s.disabled.Clear()
	for _, upgrade := range s.catalog {
		s.handler.SetEnabled(upgrade.Name, true)
	}
	s.resync(ctx)
	for _, upgrade := range s.catalog {
		s.regenerate(ctx, upgrade.Name)
	}
	s.verify(ctx)
	return nil
}

// ResetAndClose re-enables every unlocked upgrade the user disabled,
// clears the per-part overrides and ends the session.
func (s *Session) ResetAndClose(ctx context.Context) (types.PersistedFields, error) {
	ctx, err := s.begin(ctx)
	if err != nil {
		return types.PersistedFields{}, err
	}
	if s.part != nil && s.disabled.Len() > 0 {
		s.state = types.SessionStateMutating
		var reenabled []string
		for _, name := range s.disabled.Names() {
			if !s.handler.IsUnlocked(name) {
				continue
			}
			s.handler.SetEnabled(name, true)
			reenabled = append(reenabled, name)
		}
		s.disabled.Clear()
		s.resync(ctx)
		for _, name := range reenabled {
			s.regenerate(ctx, name)
		}
	}
	s.disabled.Clear()
	s.fields.DisabledUpgrades = types.NoneSentinel
	s.state = types.SessionStateClosed
	log.Ctx(ctx).Debug().Msg("editing session reset and closed")
	return s.fields, nil
}

// Close flushes the disabled set to the persisted fields and ends the
// session. Names no longer in the catalog are dropped.
func (s *Session) Close(ctx context.Context) (types.PersistedFields, error) {
	ctx, err := s.begin(ctx)
	if err != nil {
		return types.PersistedFields{}, err
	}
	if s.part != nil {
		names := catalogNames(s.catalog)
		s.disabled.Retain(names.Has)
		s.fields.DisabledUpgrades = SerializeLine(s.disabled, types.ListSeparator)
	}
	s.state = types.SessionStateClosed
	log.Ctx(ctx).Debug().
		Str("disabled_upgrades", s.fields.DisabledUpgrades).
		Msg("editing session flushed")
	return s.fields, nil
}

func (s *Session) begin(ctx context.Context) (context.Context, error) {
	switch s.state {
	case types.SessionStateIdle:
		return s.logger.WithContext(ctx), nil
	case types.SessionStateClosed:
		return ctx, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg("editing session is closed")
	default:
		return ctx, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg("reconciliation already in progress: " + string(s.state))
	}
}

func (s *Session) finish() {
	if s.state != types.SessionStateClosed {
		s.state = types.SessionStateIdle
	}
}

// resync resets the affected modules and then lets ignored upgrades win
// over anything in the disabled set.
func (s *Session) resync(ctx context.Context) {
	s.state = types.SessionStateResyncing
	s.sync.ResetModules(ctx, s.part, s.baseline, s.catalog, s.disabled)
	for _, name := range s.ignore.Names() {
		s.disabled.Remove(name)
		if !s.handler.IsUnlocked(name) {
			continue
		}
		s.handler.SetEnabled(name, true)
		s.regenerate(ctx, name)
	}
}

// regenerate reruns upgrade discovery on every module and reapplies the
// ones declaring name that still have something applied.
func (s *Session) regenerate(ctx context.Context, name string) {
	previous := s.state
	s.state = types.SessionStateRegenerating
	defer func() { s.state = previous }()
	for _, module := range s.part.Modules() {
		if len(module.DeclaredUpgrades()) == 0 {
			continue
		}
		module.FindUpgrades()
		if declares(module, name) && module.HasAppliedUpgrades() {
			module.ApplyUpgrades(ctx)
		}
	}
}

// verify repeats derive, compare and correct until a pass makes no
// correction. Regenerating one upgrade can flip another through shared
// module logic, so a single pass is not enough.
func (s *Session) verify(ctx context.Context) {
	s.state = types.SessionStateVerifying
	for pass := 1; pass <= s.maxPasses; pass++ {
		var corrected []string
		for _, upgrade := range s.catalog {
			expected := s.expectedEnabled(upgrade.Name)
			if s.handler.IsEnabled(upgrade.Name) == expected {
				continue
			}
			s.handler.SetEnabled(upgrade.Name, expected)
			s.regenerate(ctx, upgrade.Name)
			corrected = append(corrected, upgrade.Name)
		}
		if len(corrected) == 0 {
			return
		}
		log.Ctx(ctx).Debug().
			Int("pass", pass).
			Strs("corrected", corrected).
			Msg("enabled state drift corrected")
	}
	log.Ctx(ctx).Warn().
		Int("passes", s.maxPasses).
		Msg("upgrade state did not converge")
}

func (s *Session) expectedEnabled(name string) bool {
	if s.overrides.AlwaysEnable || s.ignore.Has(name) {
		return true
	}
	return !s.disabled.Has(name)
}

func (s *Session) inCatalog(name string) bool {
	for _, upgrade := range s.catalog {
		if upgrade.Name == name {
			return true
		}
	}
	return false
}
