package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/noah-isme/class-schedule-api/internal/dto"
	"github.com/noah-isme/class-schedule-api/internal/models"
	"github.com/noah-isme/class-schedule-api/internal/timetable"
	"github.com/noah-isme/class-schedule-api/pkg/response"
)

// APIError is a non-2xx answer from the schedule API.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api: status %d", e.Status)
	}
	return fmt.Sprintf("api: %s (status %d)", e.Message, e.Status)
}

// IsNotFound reports whether err is a 404 from the API.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}

// Client talks to the schedule REST API.
type Client struct {
	baseURL string
	http    *http.Client
}

// New returns a client for the API rooted at baseURL (without the /api prefix).
func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{baseURL: baseURL, http: &http.Client{Timeout: timeout}}
}

func (c *Client) Login(ctx context.Context, username, password string) (*models.UserInfo, error) {
	var info models.UserInfo
	err := c.do(ctx, http.MethodPost, "/api/auth/login", models.LoginRequest{Username: username, Password: password}, &info)
	if err != nil {
		return nil, err
	}
	return &info, nil
}

func (c *Client) Register(ctx context.Context, req models.RegisterRequest) (*models.UserInfo, error) {
	var info models.UserInfo
	if err := c.do(ctx, http.MethodPost, "/api/auth/register", req, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// Schedule fetches every lesson joined with its slot times.
func (c *Client) Schedule(ctx context.Context) ([]models.ScheduleEntry, error) {
	var entries []models.ScheduleEntry
	if err := c.do(ctx, http.MethodGet, "/api/schedule", nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (c *Client) LessonTimes(ctx context.Context) ([]models.LessonTime, error) {
	var times []models.LessonTime
	if err := c.do(ctx, http.MethodGet, "/api/lesson-times", nil, &times); err != nil {
		return nil, err
	}
	return times, nil
}

// Week loads the full schedule and buckets it into the grid of week. The
// built-in slot catalog is used when the API cannot serve lesson times.
func (c *Client) Week(ctx context.Context, week timetable.Week) (timetable.Grid, error) {
	times, err := c.LessonTimes(ctx)
	if err != nil || len(times) == 0 {
		times = timetable.DefaultLessonTimes()
	}
	rows, err := c.Schedule(ctx)
	if err != nil {
		return timetable.Grid{}, err
	}
	return timetable.BuildGrid(week, times, rows), nil
}

func (c *Client) Subjects(ctx context.Context) ([]models.Subject, error) {
	var subjects []models.Subject
	if err := c.do(ctx, http.MethodGet, "/api/subjects", nil, &subjects); err != nil {
		return nil, err
	}
	return subjects, nil
}

func (c *Client) CreateSubject(ctx context.Context, name string) (*models.Subject, error) {
	var subject models.Subject
	if err := c.do(ctx, http.MethodPost, "/api/subjects", dto.CreateSubjectRequest{Name: name}, &subject); err != nil {
		return nil, err
	}
	return &subject, nil
}

func (c *Client) DeleteSubject(ctx context.Context, id int) (*models.Subject, error) {
	var subject models.Subject
	if err := c.do(ctx, http.MethodDelete, "/api/subjects/"+strconv.Itoa(id), nil, &subject); err != nil {
		return nil, err
	}
	return &subject, nil
}

func (c *Client) Rooms(ctx context.Context) ([]models.Room, error) {
	var rooms []models.Room
	if err := c.do(ctx, http.MethodGet, "/api/rooms", nil, &rooms); err != nil {
		return nil, err
	}
	return rooms, nil
}

// SaveLesson upserts a lesson; both halves are replaced.
func (c *Client) SaveLesson(ctx context.Context, in models.LessonInput) (*models.Lesson, error) {
	req := dto.UpsertLessonRequest{
		Date:              in.Date,
		LessonNumber:      in.LessonNumber,
		FirstHalfSubject:  in.FirstHalfSubject,
		SecondHalfSubject: in.SecondHalfSubject,
		RoomFirstHalf:     in.RoomFirstHalf,
		RoomSecondHalf:    in.RoomSecondHalf,
	}
	var lesson models.Lesson
	if err := c.do(ctx, http.MethodPost, "/api/schedule", req, &lesson); err != nil {
		return nil, err
	}
	return &lesson, nil
}

func (c *Client) UpdateLesson(ctx context.Context, in models.LessonInput) (*dto.LessonResult, error) {
	req := dto.UpdateLessonRequest{
		FirstHalfSubject:  in.FirstHalfSubject,
		SecondHalfSubject: in.SecondHalfSubject,
		RoomFirstHalf:     in.RoomFirstHalf,
		RoomSecondHalf:    in.RoomSecondHalf,
	}
	var result dto.LessonResult
	if err := c.do(ctx, http.MethodPut, lessonPath(in.Date, in.LessonNumber), req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) SetCancelled(ctx context.Context, date string, lessonNumber int, cancelled bool) (*dto.LessonResult, error) {
	var result dto.LessonResult
	err := c.do(ctx, http.MethodPatch, lessonPath(date, lessonNumber)+"/status", dto.StatusRequest{IsCancelled: &cancelled}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) SetHalfCancelled(ctx context.Context, date string, lessonNumber int, half models.Half, cancelled bool) (*dto.LessonResult, error) {
	var result dto.LessonResult
	path := lessonPath(date, lessonNumber) + "/half/" + url.PathEscape(string(half)) + "/status"
	if err := c.do(ctx, http.MethodPatch, path, dto.StatusRequest{IsCancelled: &cancelled}, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) ClearHalf(ctx context.Context, date string, lessonNumber int, half models.Half) (*dto.LessonResult, error) {
	var result dto.LessonResult
	path := lessonPath(date, lessonNumber) + "/half/" + url.PathEscape(string(half))
	if err := c.do(ctx, http.MethodDelete, path, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) DeleteLesson(ctx context.Context, date string, lessonNumber int) (*dto.DeleteLessonResult, error) {
	var result dto.DeleteLessonResult
	if err := c.do(ctx, http.MethodDelete, lessonPath(date, lessonNumber), nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// CopyWeek copies every lesson of week onto the dates one week later.
func (c *Client) CopyWeek(ctx context.Context, week timetable.Week) (*dto.CopyWeekResult, error) {
	req := dto.CopyWeekRequest{CurrentWeekDates: week.Dates(), NextWeekDates: week.Shift(1).Dates()}
	var result dto.CopyWeekResult
	if err := c.do(ctx, http.MethodPost, "/api/schedule/copy", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) SeedDemoData(ctx context.Context) (*dto.MessageResult, error) {
	var result dto.MessageResult
	if err := c.do(ctx, http.MethodPost, "/api/test-data", nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Export downloads the printable timetable of the week at offset.
func (c *Client) Export(ctx context.Context, offset int, format dto.ExportFormat) (*dto.ExportFile, error) {
	query := url.Values{}
	query.Set("week", strconv.Itoa(offset))
	if format != "" {
		query.Set("format", string(format))
	}
	resp, err := c.send(ctx, http.MethodGet, "/api/schedule/export?"+query.Encode(), nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read export: %w", err)
	}
	file := &dto.ExportFile{ContentType: resp.Header.Get("Content-Type"), Data: data}
	if _, params, err := mime.ParseMediaType(resp.Header.Get("Content-Disposition")); err == nil {
		file.Filename = params["filename"]
	}
	if file.Filename == "" {
		file.Filename = fmt.Sprintf("timetable.%s", format)
	}
	return file, nil
}

func lessonPath(date string, lessonNumber int) string {
	return "/api/schedule/" + url.PathEscape(date) + "/" + strconv.Itoa(lessonNumber)
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	resp, err := c.send(ctx, method, path, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

// send performs the request and turns non-2xx answers into *APIError.
func (c *Client) send(ctx context.Context, method, path string, body interface{}) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		return resp, nil
	}
	defer resp.Body.Close()

	apiErr := &APIError{Status: resp.StatusCode}
	var payload response.ErrorBody
	if raw, readErr := io.ReadAll(resp.Body); readErr == nil {
		if json.Unmarshal(raw, &payload) == nil && payload.Error != "" {
			apiErr.Message, apiErr.Code = payload.Error, payload.Code
		} else {
			apiErr.Message = http.StatusText(resp.StatusCode)
		}
	}
	return nil, apiErr
}
