package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Ahcene43/WAW/internal/adapter"
	"github.com/Ahcene43/WAW/internal/utils"
	"github.com/Ahcene43/WAW/models"
)

const (
	defaultCommitMessagePrefix = "Mise à jour des paramètres du magasin"
	commitTimeLayout           = "02/01/2006 15:04:05"
)

// PersistLocal implements [ConfigResolver].
func (r *configResolver) PersistLocal(ctx context.Context, doc models.Document) error {
	if err := r.cache.Save(ctx, doc); err != nil {
		r.opLogger(ctx, "*configResolver.PersistLocal").Err(err).Msg("error saving configuration locally")
		return fmt.Errorf("persist configuration locally: %w", err)
	}

	doc = doc.Clone()
	r.setCurrent(doc)
	r.notify(models.EventLocalSaved, doc)

	return nil
}

// PersistRemote implements [ConfigResolver].
func (r *configResolver) PersistRemote(ctx context.Context, doc models.Document, creds models.Credentials) (models.WriteResult, error) {
	ctx = utils.WithOperationID(ctx, r.ids.Generate())
	log := r.opLogger(ctx, "*configResolver.PersistRemote")

	if !creds.CanWrite() {
		return models.WriteResult{}, &RemoteWriteError{Message: "incomplete credentials", Err: ErrIncompleteCredentials}
	}

	content, err := encodeContent(doc)
	if err != nil {
		return models.WriteResult{}, &RemoteWriteError{Message: "error encoding configuration", Err: err}
	}

	// a missing file or a failed read means the write creates the file
	sha, err := r.github.GetFileSHA(ctx, creds)
	if err != nil {
		log.Debug().Err(err).Msg("no current revision, creating file")
		sha = ""
	}

	result, err := r.github.PutFile(ctx, creds, models.PutContentsRequest{
		Message: r.commitMessage(),
		Content: content,
		SHA:     sha,
		Branch:  creds.BranchOrDefault(),
	})
	if err != nil {
		log.Err(err).Str("repo", creds.Username+"/"+creds.Repo).Msg("remote write failed")
		return models.WriteResult{}, toRemoteWriteError(err)
	}

	log.Info().Str("commit", result.Commit.SHA).Bool("created", sha == "").Msg("configuration written to remote")
	return result, nil
}

// PersistRemoteCurrent implements [ConfigResolver].
func (r *configResolver) PersistRemoteCurrent(ctx context.Context, doc models.Document) (models.WriteResult, error) {
	creds, _, err := r.credentials.Current(ctx)
	if err != nil {
		return models.WriteResult{}, &RemoteWriteError{Message: "error reading stored credentials", Err: err}
	}

	if creds.Token == "" && r.tokens != nil {
		token, err := r.tokens.Token(ctx)
		if err != nil {
			r.opLogger(ctx, "*configResolver.PersistRemoteCurrent").Err(err).Msg("error reading write token secret")
			return models.WriteResult{}, &RemoteWriteError{Message: "error reading write token", Err: err}
		}
		creds.Token = token
	}

	return r.PersistRemote(ctx, doc, creds)
}

func (r *configResolver) commitMessage() string {
	prefix := r.app.CommitMessagePrefix
	if prefix == "" {
		prefix = defaultCommitMessagePrefix
	}

	loc := r.app.Location
	if loc == nil {
		loc = time.Local
	}

	return prefix + " - " + r.now().In(loc).Format(commitTimeLayout)
}

// encodeContent renders doc as 2-space indented JSON, with non-ASCII and HTML
// characters left as is, and encodes it as standard base64.
func encodeContent(doc models.Document) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return "", err
	}

	return base64.StdEncoding.EncodeToString(bytes.TrimRight(buf.Bytes(), "\n")), nil
}

func toRemoteWriteError(err error) *RemoteWriteError {
	var httpErr *adapter.HTTPError
	if errors.As(err, &httpErr) {
		msg := httpErr.Message
		if msg == "" {
			msg = fmt.Sprintf("GitHub API error: %d", httpErr.StatusCode)
		}
		return &RemoteWriteError{Message: msg, StatusCode: httpErr.StatusCode, Err: err}
	}

	return &RemoteWriteError{Message: err.Error(), Err: err}
}
