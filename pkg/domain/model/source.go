package model

import (
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

// SourceInfo identifies a GitHub repository snapshot to download as a zipball
type SourceInfo struct {
	Owner string // Repository owner
	Repo  string // Repository name
	Ref   string // Git ref (branch, tag or commit SHA); empty means default branch
}

// ParseSourceInfo parses "owner/repo" or "owner/repo@ref"
func ParseSourceInfo(s string) (*SourceInfo, error) {
	repoPart, ref, _ := strings.Cut(strings.TrimSpace(s), "@")
	owner, repo, found := strings.Cut(repoPart, "/")
	if !found || owner == "" || repo == "" || strings.Contains(repo, "/") {
		return nil, goerr.New("invalid repository, expected owner/repo[@ref]", goerr.V("source", s))
	}

	return &SourceInfo{
		Owner: owner,
		Repo:  strings.TrimSuffix(repo, ".git"),
		Ref:   ref,
	}, nil
}

// String returns owner/repo[@ref]
func (s *SourceInfo) String() string {
	if s.Ref == "" {
		return s.Owner + "/" + s.Repo
	}
	return s.Owner + "/" + s.Repo + "@" + s.Ref
}
