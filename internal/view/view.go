package view

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/noah-isme/class-schedule-api/internal/models"
	"github.com/noah-isme/class-schedule-api/internal/timetable"
)

// ErrTeacherOnly is returned when a student session runs an editing command.
var ErrTeacherOnly = errors.New("this command is available to teachers only")

// View renders the weekly timetable for one role. It is either a StudentView
// or a TeacherView.
type View interface {
	User() models.UserInfo
	RenderWeek(w io.Writer, grid timetable.Grid) error
	isView()
}

// ForUser selects the view matching the user's role.
func ForUser(user models.UserInfo) View {
	if user.IsTeacher() {
		return TeacherView{user: user}
	}
	return StudentView{user: user}
}

// RequireTeacher returns the teacher view or ErrTeacherOnly.
func RequireTeacher(v View) (TeacherView, error) {
	teacher, ok := v.(TeacherView)
	if !ok {
		return TeacherView{}, ErrTeacherOnly
	}
	return teacher, nil
}

// StudentView shows both subjects, the shared room and whole-lesson cancellation.
type StudentView struct {
	user models.UserInfo
}

func (v StudentView) User() models.UserInfo { return v.user }
func (StudentView) isView() {}

func (v StudentView) RenderWeek(w io.Writer, grid timetable.Grid) error {
	return renderWeek(w, grid, v.user, "#\tTime\tFirst half\tSecond half\tRoom\tStatus", func(s timetable.Slot) []interface{} {
		status := ""
		if s.IsCancelled {
			status = "cancelled"
		}
		return []interface{}{dash(s.FirstHalfSubject), dash(s.SecondHalfSubject), dash(s.Room), status}
	})
}

// TeacherView shows rooms and cancellation per half.
type TeacherView struct {
	user models.UserInfo
}

func (v TeacherView) User() models.UserInfo { return v.user }
func (TeacherView) isView() {}

func (v TeacherView) RenderWeek(w io.Writer, grid timetable.Grid) error {
	return renderWeek(w, grid, v.user, "#\tTime\tFirst half\tRoom\tSecond half\tRoom\tStatus", func(s timetable.Slot) []interface{} {
		return []interface{}{
			halfLabel(s.FirstHalfSubject, s.IsCancelledFirstHalf), dash(s.RoomFirstHalf),
			halfLabel(s.SecondHalfSubject, s.IsCancelledSecondHalf), dash(s.RoomSecondHalf),
			teacherStatus(s),
		}
	})
}

func renderWeek(w io.Writer, grid timetable.Grid, user models.UserInfo, header string, columns func(timetable.Slot) []interface{}) error {
	if _, err := fmt.Fprintf(w, "%s (%s)\nWeek %s\n", user.FullName, user.Role, grid.Week.Range()); err != nil {
		return err
	}
	for _, day := range grid.Week {
		if _, err := fmt.Fprintf(w, "\n%s, %s\n", day.Weekday, day.Display); err != nil {
			return err
		}
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, header)
		for _, slot := range grid.Slots(day.Date) {
			fmt.Fprintf(tw, "%d\t%s", slot.LessonNumber, slotTime(slot.Time))
			for _, col := range columns(slot) {
				fmt.Fprintf(tw, "\t%v", col)
			}
			fmt.Fprintln(tw)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}
	return nil
}

func slotTime(lt models.LessonTime) string {
	if lt.FirstHalfStart == "" {
		return "-"
	}
	return fmt.Sprintf("%s-%s / %s-%s", lt.FirstHalfStart, lt.FirstHalfEnd, lt.SecondHalfStart, lt.SecondHalfEnd)
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func halfLabel(subject string, cancelled bool) string {
	if cancelled && subject != "" {
		return subject + " (cancelled)"
	}
	return dash(subject)
}

func teacherStatus(s timetable.Slot) string {
	switch {
	case s.IsCancelledFirstHalf && s.IsCancelledSecondHalf:
		return "cancelled"
	case s.IsCancelledFirstHalf:
		return "first half cancelled"
	case s.IsCancelledSecondHalf:
		return "second half cancelled"
	}
	return ""
}
