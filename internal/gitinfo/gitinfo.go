// Package gitinfo derives the theme's repository link from the local git checkout.
package gitinfo

import (
	"fmt"
	"log/slog"
	"net/url"
	"regexp"
	"strings"

	"github.com/go-git/go-git/v5"

	"git.home.luguber.info/inful/blogsite/internal/config"
	"git.home.luguber.info/inful/blogsite/internal/foundation/errors"
	"git.home.luguber.info/inful/blogsite/internal/logfields"
)

// DefaultRemote is the remote consulted when none is named.
const DefaultRemote = "origin"

// scpLike matches git@host:owner/name.git.
var scpLike = regexp.MustCompile(`^(?:[\w.-]+@)?([\w.-]+):([^/].*)$`)

// Repo identifies a hosted repository.
type Repo struct {
	Host  string
	Owner string
	Name  string
}

// WebURL is the https address of the repository.
func (r Repo) WebURL() string {
	return "https://" + r.Host + "/" + r.Owner + "/" + r.Name
}

// ThemeValue is the form the theme's repo option expects: owner/name on
// GitHub, the full URL elsewhere.
func (r Repo) ThemeValue() string {
	if r.Host == "github.com" {
		return r.Owner + "/" + r.Name
	}
	return r.WebURL()
}

// ParseRemoteURL understands https, ssh:// and scp-like remote URLs.
func ParseRemoteURL(raw string) (Repo, error) {
	raw = strings.TrimSpace(raw)
	var host, path string

	if strings.Contains(raw, "://") {
		u, err := url.Parse(raw)
		if err != nil {
			return Repo{}, fmt.Errorf("parse remote url %q: %w", raw, err)
		}
		host, path = u.Hostname(), u.Path
	} else if m := scpLike.FindStringSubmatch(raw); m != nil {
		host, path = m[1], m[2]
	} else {
		return Repo{}, fmt.Errorf("unsupported remote url %q", raw)
	}

	path = strings.TrimSuffix(strings.Trim(path, "/"), ".git")
	idx := strings.LastIndex(path, "/")
	if host == "" || idx <= 0 || idx == len(path)-1 {
		return Repo{}, fmt.Errorf("remote url %q does not name owner/repository", raw)
	}
	return Repo{Host: host, Owner: path[:idx], Name: path[idx+1:]}, nil
}

// RepoFromRemote opens the repository containing dir and parses the first URL
// of the named remote.
func RepoFromRemote(dir, remote string) (Repo, error) {
	if remote == "" {
		remote = DefaultRemote
	}
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return Repo{}, errors.WrapError(err, errors.CategoryGit, "failed to open git repository").
			WithContext("path", dir).
			Build()
	}
	rem, err := repo.Remote(remote)
	if err != nil {
		return Repo{}, errors.WrapError(err, errors.CategoryGit, "git remote not found").
			WithContext("remote", remote).
			Build()
	}
	urls := rem.Config().URLs
	if len(urls) == 0 {
		return Repo{}, errors.GitError("git remote has no url").WithContext("remote", remote).Build()
	}
	parsed, err := ParseRemoteURL(urls[0])
	if err != nil {
		return Repo{}, errors.WrapError(err, errors.CategoryGit, "cannot derive repository from remote").
			WithContext("remote", remote).
			Build()
	}
	return parsed, nil
}

// Resolve fills cfg.Theme.Repo from the checkout at dir when the config asks
// for it and no repo is set.
func Resolve(cfg *config.Config, dir string) error {
	if cfg.Theme.Repo != "" || !cfg.Theme.RepoFromGit {
		return nil
	}
	repo, err := RepoFromRemote(dir, DefaultRemote)
	if err != nil {
		return err
	}
	cfg.Theme.Repo = repo.ThemeValue()
	slog.Debug("Resolved repository from git remote", logfields.Repository(cfg.Theme.Repo))
	return nil
}
