package restapi

import (
	"errors"
	"net/http"

	"nexus.regintel.org/internal/dashboard"
	"nexus.regintel.org/internal/quiz"
)

type scoreRequest struct {
	Answers map[int]int `json:"answers"`
}

type answerRequest struct {
	Question *int `json:"question"`
	Answer   *int `json:"answer"`
}

// quizSessionView is a session together with its progress and, once the
// session is completed, its result.
type quizSessionView struct {
	Session  quiz.Session `json:"session"`
	Progress float64      `json:"progress"`
	Result   *quiz.Result `json:"result,omitempty"`
}

func newQuizSessionView(s quiz.Session) quizSessionView {
	view := quizSessionView{Session: s, Progress: s.Progress()}
	if s.Completed {
		result := s.Result()
		view.Result = &result
	}
	return view
}

func (api *RestAPI) quizHandler(w http.ResponseWriter, r *http.Request) {
	api.sendData(w, r, dashboard.QuizPanel{
		Meta:      quiz.QuizMeta(),
		Stats:     quiz.CurrentUserStats(),
		Questions: quiz.Questions(),
	})
}

// scoreQuizHandler scores a whole answer sheet in one call.
func (api *RestAPI) scoreQuizHandler(w http.ResponseWriter, r *http.Request) {
	var req scoreRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		api.fieldErrorResponse(w, r, "body", err)
		return
	}
	api.Metrics.QuizSubmitted()
	api.sendData(w, r, quiz.Evaluate(req.Answers))
}

func (api *RestAPI) createQuizSessionHandler(w http.ResponseWriter, r *http.Request) {
	api.sendCreated(w, r, newQuizSessionView(api.QuizSessions.Create()))
}

func (api *RestAPI) quizSessionHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := api.pathID(w, r)
	if !ok {
		return
	}
	session, err := api.QuizSessions.Get(id)
	api.sendQuizSession(w, r, session, err)
}

func (api *RestAPI) answerQuizHandler(w http.ResponseWriter, r *http.Request) {
	var req answerRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		api.fieldErrorResponse(w, r, "body", err)
		return
	}
	fieldErrors := map[string][]string{}
	if req.Question == nil {
		fieldErrors["question"] = []string{"question is required"}
	}
	if req.Answer == nil {
		fieldErrors["answer"] = []string{"answer is required"}
	}
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}
	api.updateQuizSession(w, r, func(s *quiz.Session) error {
		return s.Select(*req.Question, *req.Answer)
	})
}

func (api *RestAPI) nextQuizQuestionHandler(w http.ResponseWriter, r *http.Request) {
	api.updateQuizSession(w, r, func(s *quiz.Session) error {
		s.Next()
		return nil
	})
}

func (api *RestAPI) previousQuizQuestionHandler(w http.ResponseWriter, r *http.Request) {
	api.updateQuizSession(w, r, func(s *quiz.Session) error {
		s.Previous()
		return nil
	})
}

func (api *RestAPI) finishQuizHandler(w http.ResponseWriter, r *http.Request) {
	api.updateQuizSession(w, r, func(s *quiz.Session) error {
		s.Finish()
		return nil
	})
}

func (api *RestAPI) updateQuizSession(w http.ResponseWriter, r *http.Request, fn func(*quiz.Session) error) {
	id, ok := api.pathID(w, r)
	if !ok {
		return
	}
	session, err := api.QuizSessions.Update(id, fn)
	api.sendQuizSession(w, r, session, err)
}

func (api *RestAPI) sendQuizSession(w http.ResponseWriter, r *http.Request, session quiz.Session, err error) {
	switch {
	case err == nil:
		api.sendData(w, r, newQuizSessionView(session))
	case errors.Is(err, quiz.ErrNotFound):
		api.sendNotFound(w, r, "Quiz session not found")
	case errors.Is(err, quiz.ErrInvalidAnswer):
		api.fieldErrorResponse(w, r, "answer", err)
	default:
		api.serverErrorResponse(w, r, err, "Failed to update quiz session")
	}
}
