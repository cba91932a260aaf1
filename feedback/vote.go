package feedback

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrBadVote is returned by ParseVote for anything but like, dislike or none.
var ErrBadVote = errors.New("feedback: vote must be like, dislike or none")

// Vote is a reader's reaction to a topic.
type Vote string

// Votes.
const (
	VoteNone    Vote = "none"
	VoteLike    Vote = "like"
	VoteDislike Vote = "dislike"
)

// ParseVote accepts like, dislike and none in any case; empty means none.
func ParseVote(s string) (Vote, error) {
	switch v := Vote(strings.ToLower(strings.TrimSpace(s))); v {
	case "", VoteNone:
		return VoteNone, nil
	case VoteLike, VoteDislike:
		return v, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrBadVote, s)
	}
}

func voteKey(topic string) string { return "vote:" + strings.TrimSpace(topic) }

// SaveVote records v for topic.
func SaveVote(ctx context.Context, s Store, topic string, v Vote) error {
	if strings.TrimSpace(topic) == "" {
		return ErrEmptyKey
	}
	if _, err := ParseVote(string(v)); err != nil {
		return err
	}

	return s.Save(ctx, voteKey(topic), string(v))
}

// LoadVote returns the recorded vote for topic, VoteNone when there is none.
func LoadVote(ctx context.Context, s Store, topic string) (Vote, error) {
	if strings.TrimSpace(topic) == "" {
		return "", ErrEmptyKey
	}
	raw, err := s.Load(ctx, voteKey(topic))
	if errors.Is(err, ErrNotFound) {
		return VoteNone, nil
	}
	if err != nil {
		return "", err
	}

	return ParseVote(raw)
}

// Toggle returns the vote after pressing want: pressing the current vote
// clears it.
func Toggle(current, want Vote) Vote {
	if current == want {
		return VoteNone
	}

	return want
}
