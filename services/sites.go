package services

import (
	"nextkey_landing_go/config"
	"nextkey_landing_go/services/leadform"

	"go.uber.org/zap"
)

// Site keys
const (
	SiteGeneral = "general"
	SiteRoblox  = "roblox"
)

// Site is one landing site mounted under a path prefix
type Site struct {
	Key      string
	BasePath string // "" for the root site

	Parent *Submitter
	Child  *Submitter
}

// Path joins a site-relative path to the site prefix
func (s *Site) Path(p string) string {
	return s.BasePath + p
}

// Submitter returns the submission flow for the given form
func (s *Site) Submitter(fs leadform.FieldSet) *Submitter {
	if fs.Source == leadform.ChildFields.Source {
		return s.Child
	}
	return s.Parent
}

// SiteDeps are the shared collaborators every site's submitters use
type SiteDeps struct {
	Client  LeadSubmitter
	Captcha CaptchaVerifier
	Events  EventRecorder
	Logger  *zap.Logger
}

// NewSites builds the general and Roblox sites from configuration
func NewSites(cfg *config.Config, deps SiteDeps) []*Site {
	build := func(key, basePath, childStrategy string) *Site {
		return &Site{
			Key:      key,
			BasePath: basePath,
			Parent:   newSubmitter(key, cfg.ParentStrategy, deps),
			Child:    newSubmitter(key, childStrategy, deps),
		}
	}

	robloxPath := cfg.RobloxBasePath
	if robloxPath == "" {
		// Both sites cannot share the root
		robloxPath = "/roblox"
	}

	return []*Site{
		build(SiteGeneral, "", cfg.GeneralChildStrategy),
		build(SiteRoblox, robloxPath, cfg.RobloxChildStrategy),
	}
}

func newSubmitter(site, strategy string, deps SiteDeps) *Submitter {
	var st Strategy = NetworkStrategy{Client: deps.Client}
	if strategy == config.StrategyLocal {
		st = LocalStrategy{}
	}

	s := NewSubmitter(site, st, deps.Logger)
	if deps.Captcha != nil {
		s.Captcha = deps.Captcha
	}
	if deps.Events != nil {
		s.Events = deps.Events
	}
	return s
}
