package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/jwtauth"
	log "github.com/sirupsen/logrus"

	"github.com/fairwaylabs/golf-services/internal/comm"
	"github.com/fairwaylabs/golf-services/internal/scoresvc/broker"
	"github.com/fairwaylabs/golf-services/internal/scoresvc/models"
	"github.com/fairwaylabs/golf-services/internal/scoresvc/service"
	"github.com/fairwaylabs/golf-services/internal/scoresvc/store"
)

const searchLimit = 25

type Handler struct {
	tokenAuth *jwtauth.JWTAuth

	ClubService      *service.ClubService
	CourseService    *service.CourseService
	RoundService     *service.RoundService
	DashboardService *service.DashboardService
	FriendService    *service.FriendService
	GuestService     *service.GuestService
	ProfileService   *service.ProfileService
	Broker           *broker.Broker
}

func NewHandler(clubService *service.ClubService, courseService *service.CourseService,
	roundService *service.RoundService, dashboardService *service.DashboardService,
	friendService *service.FriendService, guestService *service.GuestService,
	profileService *service.ProfileService, b *broker.Broker) *Handler {
	return &Handler{
		ClubService:      clubService,
		CourseService:    courseService,
		RoundService:     roundService,
		DashboardService: dashboardService,
		FriendService:    friendService,
		GuestService:     guestService,
		ProfileService:   profileService,
		Broker:           b,
	}
}

type Response struct {
	Message string      `json:"message"`
	Code    int         `json:"code"`
	Data    interface{} `json:"data"`
	Error   string      `json:"error,omitempty"`
}

func (h *Handler) CreateResponse(w http.ResponseWriter, rsp Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(rsp.Code)

	json.NewEncoder(w).Encode(rsp)
}

func (h *Handler) fail(w http.ResponseWriter, code int, message string) {
	h.CreateResponse(w, Response{Message: message, Code: code, Error: message})
}

// serviceError translates store/service sentinels into HTTP responses.
func (h *Handler) serviceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		h.fail(w, http.StatusNotFound, "not found")
	case errors.Is(err, store.ErrNoRowsAffected):
		h.fail(w, http.StatusNotFound, "no matching row")
	case errors.Is(err, service.ErrNotParticipant):
		h.fail(w, http.StatusForbidden, "not a participant of this round")
	case errors.Is(err, service.ErrInvalidScore):
		h.fail(w, http.StatusBadRequest, "invalid score")
	case errors.Is(err, service.ErrNoParticipants):
		h.fail(w, http.StatusBadRequest, "round needs at least one participant")
	case errors.Is(err, service.ErrSelfFriendship):
		h.fail(w, http.StatusBadRequest, "cannot befriend yourself")
	case errors.Is(err, store.ErrFriendshipExists):
		h.fail(w, http.StatusConflict, "friendship already exists")
	case errors.Is(err, service.ErrEmptyGuestName):
		h.fail(w, http.StatusBadRequest, "guest name required")
	default:
		log.Errorf("internal error: %s", err)
		h.fail(w, http.StatusInternalServerError, "internal error")
	}
}

// userID pulls the caller's profile id out of the verified JWT.
func (h *Handler) userID(r *http.Request) (string, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", err
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", errors.New("missing sub claim")
	}
	return sub, nil
}

func urlParamInt64(r *http.Request, key string) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, key), 10, 64)
}

func (h *Handler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	rsp := Response{
		Message: "score service is running at port " + os.Getenv("SERVICE_PORT"),
		Code:    200,
		Data:    nil,
	}
	json.NewEncoder(w).Encode(rsp)
}

func (h *Handler) SearchClubsHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if q == "" {
		h.fail(w, http.StatusBadRequest, "missing query")
		return
	}

	clubs, err := h.ClubService.SearchClubs(r.Context(), q, searchLimit)
	if err != nil {
		h.serviceError(w, err)
		return
	}

	h.CreateResponse(w, Response{Message: "ok", Code: 200, Data: clubs})
}

func (h *Handler) ListClubCoursesHandler(w http.ResponseWriter, r *http.Request) {
	clubID, err := urlParamInt64(r, "clubID")
	if err != nil {
		h.fail(w, http.StatusBadRequest, "invalid club id")
		return
	}

	courses, err := h.CourseService.GetCoursesByClub(r.Context(), clubID)
	if err != nil {
		h.serviceError(w, err)
		return
	}

	h.CreateResponse(w, Response{Message: "ok", Code: 200, Data: courses})
}

func (h *Handler) GetCourseHandler(w http.ResponseWriter, r *http.Request) {
	courseID, err := urlParamInt64(r, "courseID")
	if err != nil {
		h.fail(w, http.StatusBadRequest, "invalid course id")
		return
	}

	course, err := h.CourseService.GetCourse(r.Context(), courseID)
	if err != nil {
		h.serviceError(w, err)
		return
	}

	h.CreateResponse(w, Response{Message: "ok", Code: 200, Data: course})
}

func (h *Handler) GetCourseParsHandler(w http.ResponseWriter, r *http.Request) {
	courseID, err := urlParamInt64(r, "courseID")
	if err != nil {
		h.fail(w, http.StatusBadRequest, "invalid course id")
		return
	}

	pars, err := h.CourseService.ResolveHolePars(r.Context(), courseID)
	if err != nil {
		h.serviceError(w, err)
		return
	}

	h.CreateResponse(w, Response{Message: "ok", Code: 200, Data: pars})
}

func (h *Handler) ListCourseTeesHandler(w http.ResponseWriter, r *http.Request) {
	courseID, err := urlParamInt64(r, "courseID")
	if err != nil {
		h.fail(w, http.StatusBadRequest, "invalid course id")
		return
	}

	tees, err := h.CourseService.GetTeesByCourse(r.Context(), courseID)
	if err != nil {
		h.serviceError(w, err)
		return
	}

	h.CreateResponse(w, Response{Message: "ok", Code: 200, Data: tees})
}

func (h *Handler) CreateRoundHandler(w http.ResponseWriter, r *http.Request) {
	var request struct {
		CourseId     int64                `json:"course_id"`
		Participants []models.Participant `json:"participants"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		h.fail(w, http.StatusBadRequest, "invalid body")
		return
	}

	round, err := h.RoundService.CreateRound(r.Context(), request.CourseId, request.Participants)
	if err != nil {
		h.serviceError(w, err)
		return
	}

	h.CreateResponse(w, Response{Message: "created", Code: 201, Data: round})
}

func (h *Handler) GetRoundHandler(w http.ResponseWriter, r *http.Request) {
	roundID, err := urlParamInt64(r, "roundID")
	if err != nil {
		h.fail(w, http.StatusBadRequest, "invalid round id")
		return
	}

	ctx := r.Context()
	round, err := h.RoundService.GetRound(ctx, roundID)
	if err != nil {
		h.serviceError(w, err)
		return
	}

	scores, err := h.RoundService.GetScores(ctx, roundID)
	if err != nil {
		h.serviceError(w, err)
		return
	}

	course, err := h.CourseService.GetCourse(ctx, round.CourseID)
	if err != nil {
		h.serviceError(w, err)
		return
	}

	pars, err := h.CourseService.ResolveHolePars(ctx, round.CourseID)
	if err != nil {
		h.serviceError(w, err)
		return
	}

	data := comm.RoundData{
		Round:    round,
		Scores:   scores,
		HolePars: pars,
		Course:   course,
	}
	h.CreateResponse(w, Response{Message: "ok", Code: 200, Data: data})
}

func (h *Handler) ListRoundsHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := h.userID(r)
	if err != nil {
		h.fail(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	limit := service.DefaultPageSize
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			limit = n
		}
	}

	var before *store.RoundCursor
	if raw := r.URL.Query().Get("before"); raw != "" {
		cursor, err := store.ParseRoundCursor(raw)
		if err != nil {
			h.fail(w, http.StatusBadRequest, "invalid cursor")
			return
		}
		before = cursor
	}

	page, err := h.DashboardService.ListRounds(r.Context(), userID, before, limit)
	if err != nil {
		h.serviceError(w, err)
		return
	}

	h.CreateResponse(w, Response{Message: "ok", Code: 200, Data: page})
}

func (h *Handler) UpdateScoreHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := h.userID(r)
	if err != nil {
		h.fail(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	roundID, err := urlParamInt64(r, "roundID")
	if err != nil {
		h.fail(w, http.StatusBadRequest, "invalid round id")
		return
	}

	var request struct {
		Hole        int                `json:"hole"`
		Participant models.Participant `json:"participant"`
		Score       *int               `json:"score"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		h.fail(w, http.StatusBadRequest, "invalid body")
		return
	}

	err = h.RoundService.UpdateScore(r.Context(), userID, roundID, request.Hole, request.Participant, request.Score)
	if err != nil {
		h.serviceError(w, err)
		return
	}

	h.Broker.RecordAndBroadcast(r.Context(), comm.ScoreUpdate{
		RoundId:     roundID,
		Hole:        request.Hole,
		Participant: request.Participant,
		Score:       request.Score,
	}, "")

	h.CreateResponse(w, Response{Message: "ok", Code: 200, Data: nil})
}

func (h *Handler) DeleteParticipantScoresHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := h.userID(r)
	if err != nil {
		h.fail(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	roundID, err := urlParamInt64(r, "roundID")
	if err != nil {
		h.fail(w, http.StatusBadRequest, "invalid round id")
		return
	}

	var request struct {
		Participant models.Participant `json:"participant"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		h.fail(w, http.StatusBadRequest, "invalid body")
		return
	}

	err = h.RoundService.DeleteParticipantScores(r.Context(), userID, roundID, request.Participant)
	if err != nil {
		h.serviceError(w, err)
		return
	}

	h.Broker.PublishScoresDeleted(roundID, request.Participant, "")

	h.CreateResponse(w, Response{Message: "ok", Code: 200, Data: nil})
}

func (h *Handler) ListFriendsHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := h.userID(r)
	if err != nil {
		h.fail(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	friends, err := h.FriendService.ListFriends(r.Context(), userID)
	if err != nil {
		h.serviceError(w, err)
		return
	}

	h.CreateResponse(w, Response{Message: "ok", Code: 200, Data: friends})
}

func (h *Handler) ListFriendRequestsHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := h.userID(r)
	if err != nil {
		h.fail(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	requests, err := h.FriendService.ListPendingRequests(r.Context(), userID)
	if err != nil {
		h.serviceError(w, err)
		return
	}

	h.CreateResponse(w, Response{Message: "ok", Code: 200, Data: requests})
}

func (h *Handler) SendFriendRequestHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := h.userID(r)
	if err != nil {
		h.fail(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var request struct {
		ReceiverId string `json:"receiver_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		h.fail(w, http.StatusBadRequest, "invalid body")
		return
	}

	friendship, err := h.FriendService.SendRequest(r.Context(), userID, request.ReceiverId)
	if err != nil {
		h.serviceError(w, err)
		return
	}

	h.CreateResponse(w, Response{Message: "created", Code: 201, Data: friendship})
}

func (h *Handler) AcceptFriendRequestHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := h.userID(r)
	if err != nil {
		h.fail(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	requestID, err := urlParamInt64(r, "requestID")
	if err != nil {
		h.fail(w, http.StatusBadRequest, "invalid request id")
		return
	}

	if err := h.FriendService.AcceptRequest(r.Context(), userID, requestID); err != nil {
		h.serviceError(w, err)
		return
	}

	h.CreateResponse(w, Response{Message: "ok", Code: 200, Data: nil})
}

func (h *Handler) ListGuestsHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := h.userID(r)
	if err != nil {
		h.fail(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	guests, err := h.GuestService.ListGuests(r.Context(), userID)
	if err != nil {
		h.serviceError(w, err)
		return
	}

	h.CreateResponse(w, Response{Message: "ok", Code: 200, Data: guests})
}

func (h *Handler) CreateGuestHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := h.userID(r)
	if err != nil {
		h.fail(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var request struct {
		Username string `json:"username"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		h.fail(w, http.StatusBadRequest, "invalid body")
		return
	}

	guest, err := h.GuestService.CreateGuest(r.Context(), userID, request.Username)
	if err != nil {
		h.serviceError(w, err)
		return
	}

	h.CreateResponse(w, Response{Message: "created", Code: 201, Data: guest})
}

func (h *Handler) DeleteGuestHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := h.userID(r)
	if err != nil {
		h.fail(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	guestID, err := urlParamInt64(r, "guestID")
	if err != nil {
		h.fail(w, http.StatusBadRequest, "invalid guest id")
		return
	}

	if err := h.GuestService.DeleteGuest(r.Context(), guestID, userID); err != nil {
		h.serviceError(w, err)
		return
	}

	h.CreateResponse(w, Response{Message: "ok", Code: 200, Data: nil})
}

func (h *Handler) SearchProfilesHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if q == "" {
		h.fail(w, http.StatusBadRequest, "missing query")
		return
	}

	profiles, err := h.ProfileService.SearchProfiles(r.Context(), q, searchLimit)
	if err != nil {
		h.serviceError(w, err)
		return
	}

	h.CreateResponse(w, Response{Message: "ok", Code: 200, Data: profiles})
}
