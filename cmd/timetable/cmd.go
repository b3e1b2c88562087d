package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/term"

	"github.com/noah-isme/class-schedule-api/internal/client"
	"github.com/noah-isme/class-schedule-api/internal/dto"
	"github.com/noah-isme/class-schedule-api/internal/models"
	"github.com/noah-isme/class-schedule-api/internal/session"
	"github.com/noah-isme/class-schedule-api/internal/timetable"
	"github.com/noah-isme/class-schedule-api/internal/view"
)

var (
	readPasswordFunc = term.ReadPassword // mockable

	errHelp = errors.New("help provided")
)

type commandLine struct {
	api       *client.Client
	session   *session.Session
	reference time.Time
	out       io.Writer
}

func (cli *commandLine) printUsage() {
	fmt.Fprintln(cli.out, `Usage: timetable COMMAND [flags]

Account:
  login -username NAME [-password PASS]   sign in (password is prompted when omitted)
  logout                                  forget the stored session
  register -username NAME -password PASS -name "FULL NAME" [-role student|teacher]

Timetable:
  week [-week N]                          show the week N weeks from the reference week
  export [-week N] [-format csv|pdf] [-o FILE]
  rooms                                   list rooms
  subjects                                list subjects

Teacher only:
  add -date D -lesson N -subject S [-half first|second|both] [-room R]
  edit -date D -lesson N -subject S [-half first|second|both] [-room R]
  delete -date D -lesson N
  clear -date D -lesson N [-half first|second|both]
  cancel -date D -lesson N [-resume]
  cancel-half -date D -lesson N -half first|second [-resume]
  copy [-week N]                          copy week N onto the following week
  seed                                    replace all data with demo subjects and rooms
  subject-add NAME
  subject-remove ID`)
}

func (cli *commandLine) run(ctx context.Context, args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	name, rest := args[1], args[2:]
	switch name {
	case "login":
		return cli.login(ctx, rest)
	case "logout":
		return cli.logout()
	case "register":
		return cli.register(ctx, rest)
	case "help", "-h", "--help":
		cli.printUsage()
		return errHelp
	}

	v, err := cli.view()
	if err != nil {
		return err
	}

	switch name {
	case "week":
		return cli.week(ctx, v, rest)
	case "export":
		return cli.export(ctx, rest)
	case "rooms":
		return cli.rooms(ctx)
	case "subjects":
		return cli.subjects(ctx)
	}

	if _, err := view.RequireTeacher(v); err != nil {
		return err
	}

	switch name {
	case "add":
		return cli.saveLesson(ctx, rest, false)
	case "edit":
		return cli.saveLesson(ctx, rest, true)
	case "delete":
		return cli.deleteLesson(ctx, rest)
	case "clear":
		return cli.clearHalf(ctx, rest)
	case "cancel":
		return cli.cancel(ctx, rest)
	case "cancel-half":
		return cli.cancelHalf(ctx, rest)
	case "copy":
		return cli.copyWeek(ctx, v, rest)
	case "seed":
		return cli.seed(ctx)
	case "subject-add":
		return cli.subjectAdd(ctx, rest)
	case "subject-remove":
		return cli.subjectRemove(ctx, rest)
	default:
		cli.printUsage()
		return errHelp
	}
}

func (cli *commandLine) view() (view.View, error) {
	user, err := cli.session.User()
	if err != nil {
		return nil, err
	}
	return view.ForUser(user), nil
}

func (cli *commandLine) login(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	username := fs.String("username", "", "account name")
	password := fs.String("password", "", "password; prompted when omitted")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *username == "" {
		fs.Usage()
		return errHelp
	}
	if *password == "" {
		fmt.Fprint(cli.out, "Enter password:")
		pwd, err := readPasswordFunc(int(os.Stdin.Fd()))
		fmt.Fprintln(cli.out)
		if err != nil {
			return err
		}
		*password = string(pwd)
	}

	user, err := cli.api.Login(ctx, *username, *password)
	if err != nil {
		return err
	}
	if err := cli.session.SignIn(*user); err != nil {
		return err
	}
	fmt.Fprintf(cli.out, "Signed in as %s (%s)\n", user.FullName, user.Role)
	return nil
}

func (cli *commandLine) logout() error {
	if err := cli.session.SignOut(); err != nil {
		return err
	}
	fmt.Fprintln(cli.out, "Signed out")
	return nil
}

func (cli *commandLine) register(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("register", flag.ContinueOnError)
	username := fs.String("username", "", "account name")
	password := fs.String("password", "", "password")
	fullName := fs.String("name", "", "full name")
	role := fs.String("role", string(models.RoleStudent), "student or teacher")
	if err := fs.Parse(args); err != nil {
		return err
	}

	roleID := models.RoleIDStudent
	switch models.UserRole(*role) {
	case models.RoleStudent:
	case models.RoleTeacher:
		roleID = models.RoleIDTeacher
	default:
		return fmt.Errorf("unknown role %q", *role)
	}

	user, err := cli.api.Register(ctx, models.RegisterRequest{Username: *username, Password: *password, RoleID: roleID, FullName: *fullName})
	if err != nil {
		return err
	}
	fmt.Fprintf(cli.out, "Registered %s (%s)\n", user.Username, user.Role)
	return nil
}

func (cli *commandLine) week(ctx context.Context, v view.View, args []string) error {
	fs := flag.NewFlagSet("week", flag.ContinueOnError)
	offset := fs.Int("week", 0, "weeks from the reference week")
	if err := fs.Parse(args); err != nil {
		return err
	}
	grid, err := cli.api.Week(ctx, timetable.WeekWindow(cli.reference, *offset))
	if err != nil {
		return err
	}
	return v.RenderWeek(cli.out, grid)
}

func (cli *commandLine) export(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	offset := fs.Int("week", 0, "weeks from the reference week")
	format := fs.String("format", string(dto.ExportFormatCSV), "csv or pdf")
	output := fs.String("o", "", "output file; defaults to the server-suggested name")
	if err := fs.Parse(args); err != nil {
		return err
	}

	file, err := cli.api.Export(ctx, *offset, dto.ExportFormat(*format))
	if err != nil {
		return err
	}
	path := *output
	if path == "" {
		path = file.Filename
	}
	if err := os.WriteFile(path, file.Data, 0o644); err != nil {
		return fmt.Errorf("write export: %w", err)
	}
	fmt.Fprintf(cli.out, "Saved %s (%d bytes)\n", path, len(file.Data))
	return nil
}

func (cli *commandLine) rooms(ctx context.Context) error {
	rooms, err := cli.api.Rooms(ctx)
	if err != nil {
		return err
	}
	for _, r := range rooms {
		fmt.Fprintf(cli.out, "%d\t%s\n", r.ID, r.Name)
	}
	return nil
}

func (cli *commandLine) subjects(ctx context.Context) error {
	subjects, err := cli.api.Subjects(ctx)
	if err != nil {
		return err
	}
	for _, s := range subjects {
		fmt.Fprintf(cli.out, "%d\t%s\n", s.ID, s.Name)
	}
	return nil
}

type lessonFlags struct {
	fs     *flag.FlagSet
	date   *string
	number *int
	half   *string
}

func newLessonFlags(name, defaultHalf string) lessonFlags {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	return lessonFlags{
		fs:     fs,
		date:   fs.String("date", "", "lesson date, YYYY-MM-DD"),
		number: fs.Int("lesson", 0, "lesson number, 1-6"),
		half:   fs.String("half", defaultHalf, "first, second or both"),
	}
}

func (f lessonFlags) parse(args []string) error {
	if err := f.fs.Parse(args); err != nil {
		return err
	}
	if _, err := time.Parse(timetable.DateLayout, *f.date); err != nil {
		return fmt.Errorf("-date must be formatted as YYYY-MM-DD")
	}
	if *f.number < 1 || *f.number > models.LessonsPerDay {
		return fmt.Errorf("-lesson must be between 1 and %d", models.LessonsPerDay)
	}
	return nil
}

// saveLesson merges a single-half edit with the current slot before writing,
// since the API replaces both halves.
func (cli *commandLine) saveLesson(ctx context.Context, args []string, existingOnly bool) error {
	f := newLessonFlags("add", string(models.HalfBoth))
	subject := f.fs.String("subject", "", "subject name")
	room := f.fs.String("room", "", "room for the edited half")
	if err := f.parse(args); err != nil {
		return err
	}

	day, _ := time.ParseInLocation(timetable.DateLayout, *f.date, cli.reference.Location())
	grid, err := cli.api.Week(ctx, timetable.WeekWindow(day, 0))
	if err != nil {
		return err
	}
	slot, _ := grid.Slot(*f.date, *f.number)
	input, err := timetable.BuildUpsert(*f.date, slot, models.Half(*f.half), strings.TrimSpace(*subject), strings.TrimSpace(*room))
	if err != nil {
		return err
	}

	if existingOnly {
		if _, err := cli.api.UpdateLesson(ctx, input); err != nil {
			return err
		}
	} else if _, err := cli.api.SaveLesson(ctx, input); err != nil {
		return err
	}
	fmt.Fprintf(cli.out, "Saved lesson %d on %s\n", input.LessonNumber, input.Date)
	return nil
}

func (cli *commandLine) deleteLesson(ctx context.Context, args []string) error {
	f := newLessonFlags("delete", "")
	if err := f.parse(args); err != nil {
		return err
	}
	result, err := cli.api.DeleteLesson(ctx, *f.date, *f.number)
	if err != nil {
		return err
	}
	fmt.Fprintln(cli.out, result.Message)
	return nil
}

func (cli *commandLine) clearHalf(ctx context.Context, args []string) error {
	f := newLessonFlags("clear", string(models.HalfBoth))
	if err := f.parse(args); err != nil {
		return err
	}
	result, err := cli.api.ClearHalf(ctx, *f.date, *f.number, models.Half(*f.half))
	if err != nil {
		return err
	}
	fmt.Fprintln(cli.out, result.Message)
	return nil
}

func (cli *commandLine) cancel(ctx context.Context, args []string) error {
	f := newLessonFlags("cancel", "")
	resume := f.fs.Bool("resume", false, "undo the cancellation")
	if err := f.parse(args); err != nil {
		return err
	}
	result, err := cli.api.SetCancelled(ctx, *f.date, *f.number, !*resume)
	if err != nil {
		return err
	}
	fmt.Fprintln(cli.out, result.Message)
	return nil
}

func (cli *commandLine) cancelHalf(ctx context.Context, args []string) error {
	f := newLessonFlags("cancel-half", "")
	resume := f.fs.Bool("resume", false, "undo the cancellation")
	if err := f.parse(args); err != nil {
		return err
	}
	half := models.Half(*f.half)
	if !half.Valid(false) {
		return fmt.Errorf("-half must be first or second")
	}
	if _, err := cli.api.SetHalfCancelled(ctx, *f.date, *f.number, half, !*resume); err != nil {
		return err
	}
	state := "cancelled"
	if *resume {
		state = "resumed"
	}
	fmt.Fprintf(cli.out, "Lesson %d on %s: %s half %s\n", *f.number, *f.date, half, state)
	return nil
}

// copyWeek copies a week forward and renders the target week from the rows
// the API returned, without refetching.
func (cli *commandLine) copyWeek(ctx context.Context, v view.View, args []string) error {
	fs := flag.NewFlagSet("copy", flag.ContinueOnError)
	offset := fs.Int("week", 0, "source week, relative to the reference week")
	if err := fs.Parse(args); err != nil {
		return err
	}

	week := timetable.WeekWindow(cli.reference, *offset)
	result, err := cli.api.CopyWeek(ctx, week)
	if err != nil {
		return err
	}
	times, err := cli.api.LessonTimes(ctx)
	if err != nil {
		times = nil
	}
	grid := timetable.BuildGrid(week.Shift(1), times, nil)
	grid.Merge(result.Schedule)

	fmt.Fprintf(cli.out, "%s: %d lessons\n", result.Message, len(result.Schedule))
	return v.RenderWeek(cli.out, grid)
}

func (cli *commandLine) seed(ctx context.Context) error {
	result, err := cli.api.SeedDemoData(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(cli.out, result.Message)
	return nil
}

func (cli *commandLine) subjectAdd(ctx context.Context, args []string) error {
	name := strings.TrimSpace(strings.Join(args, " "))
	if name == "" {
		return fmt.Errorf("subject name is required")
	}
	subject, err := cli.api.CreateSubject(ctx, name)
	if err != nil {
		return err
	}
	fmt.Fprintf(cli.out, "Added %d\t%s\n", subject.ID, subject.Name)
	return nil
}

func (cli *commandLine) subjectRemove(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: subject-remove ID")
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("subject id must be an integer")
	}
	subject, err := cli.api.DeleteSubject(ctx, id)
	if err != nil {
		return err
	}
	fmt.Fprintf(cli.out, "Removed %s\n", subject.Name)
	return nil
}
