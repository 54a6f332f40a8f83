// Package assistant orchestrates the message pipeline: lexical analysis,
// sentiment, intent classification, and response generation, with an
// optional remote chat backend tried first and the local rule pipeline as
// the fallback. ProcessMessage never fails; every input yields displayable
// text.
package assistant

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/alukotobi/tobichat/internal/classifier"
	"github.com/alukotobi/tobichat/internal/conversation"
	"github.com/alukotobi/tobichat/internal/knowledge"
	"github.com/alukotobi/tobichat/internal/llm"
	"github.com/alukotobi/tobichat/internal/nlp"
	"github.com/alukotobi/tobichat/internal/responder"
)

// personaPrompt is the system message sent with every remote request.
const personaPrompt = "You are Tobi AI, a friendly and knowledgeable assistant created by Aluko Oluwatobi. " +
	"You help people with technology, programming, AI, and learning. " +
	"Answer clearly and concisely, use Markdown formatting where it helps, " +
	"and adapt your depth to the user's apparent experience level. " +
	"If you are unsure about something, say so rather than guessing."

const apologyReply = "I apologize, but I ran into an unexpected problem processing that. Could you try rephrasing your message?"

const defaultRemoteTimeout = 15 * time.Second

// Options configures an Assistant. A nil Provider means local-only mode.
type Options struct {
	Provider      llm.Provider
	Model         string
	Temperature   float64
	RemoteTimeout time.Duration
	Tuning        *classifier.Tuning
	Seed          int64
}

// Assistant holds the pipeline's static collaborators. It is safe to
// share across sessions; all per-conversation state lives in Session.
type Assistant struct {
	analyzer   *nlp.Analyzer
	sentiment  *nlp.SentimentScorer
	classifier *classifier.Classifier
	kb         *knowledge.Base
	responder  *responder.Generator

	provider      llm.Provider
	model         string
	temperature   float64
	remoteTimeout time.Duration
}

// New builds an Assistant from opts, filling in defaults for anything
// unset.
func New(opts Options) *Assistant {
	tuning := classifier.DefaultTuning()
	if opts.Tuning != nil {
		tuning = *opts.Tuning
	}
	timeout := opts.RemoteTimeout
	if timeout <= 0 {
		timeout = defaultRemoteTimeout
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	kb := knowledge.NewBase()
	return &Assistant{
		analyzer:      nlp.NewAnalyzer(),
		sentiment:     nlp.NewSentimentScorer(),
		classifier:    classifier.New(tuning),
		kb:            kb,
		responder:     responder.NewSeeded(kb, seed),
		provider:      opts.Provider,
		model:         opts.Model,
		temperature:   opts.Temperature,
		remoteTimeout: timeout,
	}
}

// Knowledge exposes the catalog backing the assistant's answers.
func (a *Assistant) Knowledge() *knowledge.Base { return a.kb }

// RemoteEnabled reports whether a remote backend is configured.
func (a *Assistant) RemoteEnabled() bool { return a.provider != nil }

// Reply is the outcome of one processed turn.
type Reply struct {
	Text     string
	Analysis classifier.Result
}

// ProcessMessage runs one turn through the pipeline and records it in the
// session. It never returns an error: remote failures fall back to the
// local pipeline and any panic becomes an apology reply.
func (a *Assistant) ProcessMessage(ctx context.Context, sess *Session, text string) (reply Reply) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("assistant: recovered from pipeline panic: %v", r)
			reply = Reply{
				Text:     apologyReply,
				Analysis: classifier.Result{Intent: classifier.IntentGeneral},
			}
		}
	}()

	feats := a.analyzer.Analyze(text)
	score := a.sentiment.Score(nlp.Stems(text))
	res := a.classifier.Classify(text, feats, score, classifier.Prior{
		TurnCount:     sess.Context.TurnCount(),
		SessionTopics: sess.Context.Topics(),
	})

	var out string
	if a.provider != nil {
		out = a.remoteReply(ctx, sess, text)
	}
	if out == "" {
		out = a.responder.Generate(text, res, sess.Context.Snapshot())
	}

	a.record(sess, text, out, res)
	return Reply{Text: out, Analysis: res}
}

// remoteReply makes a single bounded attempt against the remote backend.
// An empty return means the local pipeline should answer this turn.
func (a *Assistant) remoteReply(ctx context.Context, sess *Session, text string) string {
	ctx, cancel := context.WithTimeout(ctx, a.remoteTimeout)
	defer cancel()

	messages := append(sess.remoteMessages(), llm.Message{Role: llm.RoleUser, Content: text})
	resp, err := a.provider.Chat(ctx, llm.ChatRequest{
		Model:       a.model,
		Messages:    messages,
		Temperature: a.temperature,
	})
	if err != nil {
		log.Printf("assistant: remote backend failed, using local pipeline: %v", err)
		return ""
	}
	return strings.TrimSpace(resp.Content)
}

func (a *Assistant) record(sess *Session, text, reply string, res classifier.Result) {
	sess.Context.Record(conversation.Turn{
		UserText:     text,
		ResponseText: reply,
		Timestamp:    time.Now(),
		Topics:       res.Topics,
	})
	sess.Context.UpdateExpertise(res.Topics)
	sess.Context.AdaptStyle(res.Complexity)

	if key := strings.ToLower(strings.TrimSpace(text)); key != "" {
		sess.Context.Remember(key, conversation.Interaction{
			UserText:     text,
			ResponseText: reply,
			Topics:       res.Topics,
			Intent:       res.Intent,
		})
	}

	sess.appendRemote(text, reply)
	sess.LastActive = time.Now()
}
