package main

import (
	"fmt"
	"log"
	"os"
	"text/tabwriter"

	"projecthub-backend/internal/store"
)

// Prints the seeded fixture data as tables, useful for eyeballing the
// dataset the server starts with.
//
// Usage: go run scripts/dump_fixtures.go
func main() {
	s, err := store.Seed()
	if err != nil {
		log.Fatalf("Failed to seed store: %v", err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)

	fmt.Fprintln(w, "USERS")
	fmt.Fprintln(w, "ID\tNAME\tEMAIL\tROLE\tACTIVE")
	for _, u := range s.Users {
		fmt.Fprintf(w, "%d\t%s %s\t%s\t%s\t%t\n", u.ID, u.FirstName, u.LastName, u.Email, u.Role, u.IsActive)
	}

	fmt.Fprintln(w, "\nPROJECTS")
	fmt.Fprintln(w, "ID\tNAME\tSTATUS\tMANAGER\tEND DATE")
	for _, p := range s.Projects {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", p.ID, p.Name, p.Status, p.ProjectManager.Email, p.EndDate.Format("2006-01-02"))
	}

	fmt.Fprintln(w, "\nTASKS")
	fmt.Fprintln(w, "ID\tTITLE\tSTATUS\tPROGRESS\tASSIGNEE\tDUE")
	for _, t := range s.Tasks {
		fmt.Fprintf(w, "%d\t%s\t%s\t%d%%\t%s\t%s\n", t.ID, t.Title, t.Status, t.Progress, t.AssignedTo.Email, t.DueDate.Format("2006-01-02"))
	}

	fmt.Fprintln(w, "\nCOUNTS")
	fmt.Fprintf(w, "members\t%d\n", len(s.Members))
	fmt.Fprintf(w, "comments\t%d\n", len(s.Comments))
	fmt.Fprintf(w, "notifications\t%d\n", len(s.Notifications))
	fmt.Fprintf(w, "activities\t%d\n", len(s.Activities))

	if err := w.Flush(); err != nil {
		log.Fatalf("Failed to flush output: %v", err)
	}
}
