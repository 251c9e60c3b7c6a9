package handlers

import (
	"net/http"

	"github.com/nourcare/childcare-api/triage"
)

// triageNextPayload is the request body for advancing the triage flow.
type triageNextPayload struct {
	CurrentIndex int               `json:"currentIndex"`
	Answers      map[string]string `json:"answers"`
}

// triageOutcomePayload is the request body for resolving an outcome.
type triageOutcomePayload struct {
	Answers map[string]string `json:"answers"`
}

// ServeTriageQuestions returns the full ordered question tree
func (h *HTTPHandlerImpl) ServeTriageQuestions(w http.ResponseWriter, r *http.Request) {
	h.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"questions": triage.Questions(),
		"count":     triage.QuestionCount(),
	})
}

// ResolveTriageNext returns the question that follows currentIndex given
// the answers so far, or done=true when the flow is exhausted.
func (h *HTTPHandlerImpl) ResolveTriageNext(w http.ResponseWriter, r *http.Request) {
	var payload triageNextPayload
	if err := h.decodeJSONBody(r, &payload); err != nil {
		h.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	if payload.Answers == nil {
		payload.Answers = map[string]string{}
	}

	question, more := triage.NextQuestion(payload.CurrentIndex, payload.Answers)
	if !more {
		h.RespondWithJSON(w, http.StatusOK, map[string]interface{}{"done": true})
		return
	}

	h.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"done":     false,
		"question": question,
	})
}

// ResolveTriageOutcome maps an answer set to a recommendation. Incomplete
// answer sets are accepted and fall through to the default outcome.
func (h *HTTPHandlerImpl) ResolveTriageOutcome(w http.ResponseWriter, r *http.Request) {
	var payload triageOutcomePayload
	if err := h.decodeJSONBody(r, &payload); err != nil {
		h.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	if payload.Answers == nil {
		payload.Answers = map[string]string{}
	}

	h.RespondWithJSON(w, http.StatusOK, triage.ResolveOutcome(payload.Answers))
}
