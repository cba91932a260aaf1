// Package explain produces prose explanations of algorithm topics.
//
// Explainer is the collaborator contract. Callers pass topic IDs; Titled
// resolves an ID to the human title a model is prompted with, and Cached
// keys its entries by the ID it receives. OpenAI talks to any
// OpenAI-compatible chat completion endpoint; Static serves canned text.
// Every failure of the remote service surfaces as a *ServiceError, which
// matches ErrUnavailable under errors.Is. Failures are never retried.
package explain

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrUnavailable is the error kind shared by every explanation service failure.
var ErrUnavailable = errors.New("explain: service unavailable")

// ErrNoAPIKey is returned by NewOpenAI when no API key is configured.
var ErrNoAPIKey = errors.New("explain: API key is not set")

// ErrEmptyTopic is returned for a blank topic.
var ErrEmptyTopic = errors.New("explain: empty topic")

// Explainer turns a topic into explanatory markdown.
type Explainer interface {
	Explain(ctx context.Context, topic string) (string, error)
}

// ServiceError reports a failed call to the explanation service.
type ServiceError struct {
	Op  string
	Err error
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("explain: %s: %v", e.Op, e.Err)
}

func (e *ServiceError) Unwrap() error { return e.Err }

// Is makes every ServiceError match ErrUnavailable.
func (e *ServiceError) Is(target error) bool { return target == ErrUnavailable }

// Static answers from a fixed table keyed by topic; unknown topics are a
// ServiceError.
type Static map[string]string

// Explain implements Explainer.
func (s Static) Explain(_ context.Context, topic string) (string, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return "", ErrEmptyTopic
	}
	text, ok := s[topic]
	if !ok {
		return "", &ServiceError{Op: "lookup " + topic, Err: errors.New("no explanation")}
	}

	return text, nil
}

// Cache stores explanations by key.
type Cache interface {
	Load(ctx context.Context, key string) (string, error)
	Save(ctx context.Context, key, value string) error
}

// Titled resolves the topic it is given through Title before asking Next,
// so a model sees "Breadth-first search" while callers pass "bfs".
type Titled struct {
	Next  Explainer
	Title func(id string) (string, error)
}

// Explain implements Explainer.
func (t Titled) Explain(ctx context.Context, id string) (string, error) {
	title, err := t.Title(strings.TrimSpace(id))
	if err != nil {
		return "", err
	}

	return t.Next.Explain(ctx, title)
}

// Cached serves explanations from c before asking next, under the key
// "explain:<topic>". Successful answers are written back; cache failures
// are treated as misses.
type Cached struct {
	Next  Explainer
	Cache Cache
}

// Explain implements Explainer.
func (c Cached) Explain(ctx context.Context, topic string) (string, error) {
	key := "explain:" + strings.TrimSpace(topic)
	if text, err := c.Cache.Load(ctx, key); err == nil && text != "" {
		return text, nil
	}
	text, err := c.Next.Explain(ctx, topic)
	if err != nil {
		return "", err
	}
	_ = c.Cache.Save(ctx, key, text)

	return text, nil
}
