package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Soumo04/TalentNest/internal/app"
	"github.com/Soumo04/TalentNest/internal/portal"
	"github.com/Soumo04/TalentNest/internal/terminal"
	"github.com/Soumo04/TalentNest/pkg/models"
)

var portalCmd = &cobra.Command{
	Use:   "portal",
	Short: "Launch the interactive career portal",
	Long:  "Browse positions, apply, check and update application status in one interactive page",
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := app.FromContext(cmd.Context())
		if err != nil {
			return err
		}
		height, _ := cmd.Flags().GetInt("height")

		view := terminal.New(cmd.OutOrStdout(), terminal.Live(height))
		s := &session{
			in:   bufio.NewReader(cmd.InOrStdin()),
			out:  cmd.OutOrStdout(),
			c:    application.Portal(view),
			view: view,
			page: height / 2,
		}
		return s.run(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(portalCmd)
	portalCmd.Flags().Int("height", 20, "Visible page lines")
}

// session is one interactive portal run reading commands line by line
type session struct {
	in   *bufio.Reader
	out  io.Writer
	c    *portal.Controller
	view *terminal.View
	page int
}

func (s *session) run(ctx context.Context) error {
	s.c.Render()
	_ = s.c.LoadJobs(ctx)

	for {
		line, err := s.in.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		if quit := s.exec(ctx, strings.TrimSpace(line)); quit || errors.Is(err, io.EOF) {
			return nil
		}
		if ctx.Err() != nil {
			return nil
		}
	}
}

// exec runs one command line and reports whether the session should end
func (s *session) exec(ctx context.Context, line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		s.c.Render()
		return false
	}

	switch cmd := strings.ToLower(fields[0]); cmd {
	case "q", "quit":
		return true
	case "1", "2", "3", "4":
		n, _ := strconv.Atoi(cmd)
		s.c.Navigate(portal.Sections()[n-1])
	case "n":
		s.view.ScrollBy(s.page)
	case "p":
		s.view.ScrollBy(-s.page)
	case "r":
		_ = s.c.LoadJobs(ctx)
	case "a":
		s.choose(fields[1:])
	case "s":
		s.submit(ctx)
	case "c":
		id := strings.Join(fields[1:], " ")
		if id == "" {
			s.hold(func() {
				id = s.prompt("Application ID", s.c.State().Status.Query)
			})
		}
		_ = s.c.CheckStatus(ctx, id)
	case "u":
		admin := s.c.State().Admin
		var id, status string
		s.hold(func() {
			id = s.prompt("Application ID", admin.ApplicationID)
			status = s.prompt("New Status (Pending, Reviewed, Rejected, Accepted)", admin.NewStatus)
		})
		_ = s.c.UpdateStatus(ctx, id, status)
	default:
		s.c.Render()
	}
	return false
}

// choose is the apply action on card n
func (s *session) choose(args []string) {
	postings := s.c.State().Jobs.Postings
	if len(args) == 0 {
		s.c.Render()
		return
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 || n > len(postings) {
		s.c.Render()
		return
	}
	_ = s.c.ChooseJob(postings[n-1].ID)
}

func (s *session) submit(ctx context.Context) {
	state := s.c.State()
	in := state.Form.Input

	var choices []string
	for i, job := range state.Jobs.Postings {
		choices = append(choices, fmt.Sprintf("%d %s", i+1, job.Title))
	}
	s.hold(func() {
		if len(choices) > 0 {
			fmt.Fprintln(s.out, strings.Join(choices, " · "))
		}
		in.JobID = s.resolveJob(s.prompt("Position", in.JobID), state.Jobs.Postings)
		in.Name = s.prompt("Full Name", in.Name)
		in.Email = s.prompt("Email", in.Email)
		in.ResumeLink = s.prompt("Resume Link", in.ResumeLink)
	})

	_ = s.c.SubmitApplication(ctx, in)
}

// resolveJob accepts a card number or a raw job ID; card numbers win
func (s *session) resolveJob(value string, postings []models.JobPosting) string {
	if n, err := strconv.Atoi(value); err == nil && n >= 1 && n <= len(postings) {
		return postings[n-1].ID
	}
	return value
}

// hold keeps timer redraws off the screen while fn prompts for input
func (s *session) hold(fn func()) {
	s.view.Suspend()
	defer s.view.Resume()
	fn()
}

// prompt reads one line; an empty answer keeps current
func (s *session) prompt(label, current string) string {
	if current != "" {
		fmt.Fprintf(s.out, "%s [%s]: ", label, current)
	} else {
		fmt.Fprintf(s.out, "%s: ", label)
	}
	line, _ := s.in.ReadString('\n')
	if line = strings.TrimSpace(line); line != "" {
		return line
	}
	return current
}
