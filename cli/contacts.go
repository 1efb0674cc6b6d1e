// ABOUTME: Contact CLI commands
// ABOUTME: Human-friendly commands for managing contacts
package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/harperreed/pipelinepro/forms"
	"github.com/harperreed/pipelinepro/models"
	"github.com/harperreed/pipelinepro/services"
)

// buildContact funnels flag values through the same normalization the
// quick-add form uses.
func buildContact(first, last, email, phone, company, position, tags string) models.Contact {
	return forms.BuildContact(forms.Values{
		"firstName": first,
		"lastName":  last,
		"email":     email,
		"phone":     phone,
		"company":   company,
		"position":  position,
		"tags":      tags,
	})
}

// AddContactCommand adds a new contact.
func AddContactCommand(svc *services.Registry, args []string) error {
	fs := flag.NewFlagSet("add-contact", flag.ExitOnError)
	first := fs.String("first-name", "", "First name (required)")
	last := fs.String("last-name", "", "Last name (required)")
	email := fs.String("email", "", "Email address (required)")
	phone := fs.String("phone", "", "Phone number")
	company := fs.String("company", "", "Company name")
	position := fs.String("position", "", "Job title")
	tags := fs.String("tags", "", "Comma-separated tags")
	_ = fs.Parse(args)

	if *first == "" || *last == "" {
		return fmt.Errorf("--first-name and --last-name are required")
	}
	if *email == "" {
		return fmt.Errorf("--email is required")
	}

	contact, err := svc.Contacts.Create(context.Background(), buildContact(*first, *last, *email, *phone, *company, *position, *tags))
	if err != nil {
		return fmt.Errorf("failed to create contact: %w", err)
	}

	fmt.Printf("✓ Contact created: %s (ID: %d)\n", contact.FullName(), contact.ID)
	if contact.Email != "" {
		fmt.Printf("  Email: %s\n", contact.Email)
	}
	if contact.Company != "" {
		fmt.Printf("  Company: %s\n", contact.Company)
	}

	return nil
}

// ListContactsCommand lists contacts, optionally filtered by a search
// query, company, or tags.
func ListContactsCommand(svc *services.Registry, args []string) error {
	fs := flag.NewFlagSet("list-contacts", flag.ExitOnError)
	query := fs.String("query", "", "Search across name, email, company, position, tags")
	company := fs.String("company", "", "Filter by company name")
	tags := fs.String("tags", "", "Filter by comma-separated tags (any match)")
	_ = fs.Parse(args)

	filters := services.ContactFilters{}
	if *company != "" {
		filters.Companies = []string{*company}
	}
	if *tags != "" {
		filters.Tags = splitTags(*tags)
	}

	contacts, err := svc.Contacts.Search(context.Background(), *query, filters)
	if err != nil {
		return fmt.Errorf("failed to find contacts: %w", err)
	}

	if len(contacts) == 0 {
		fmt.Println("No contacts found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tNAME\tEMAIL\tCOMPANY\tPOSITION\tTAGS")
	_, _ = fmt.Fprintln(w, "--\t----\t-----\t-------\t--------\t----")

	for _, c := range contacts {
		email := c.Email
		if email == "" {
			email = "-"
		}
		_, _ = fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
			c.ID, c.FullName(), email, orDash(c.Company), orDash(c.Position), strings.Join(c.Tags, ","))
	}
	_ = w.Flush()

	fmt.Printf("\nTotal: %d contact(s)\n", len(contacts))
	return nil
}

// UpdateContactCommand updates an existing contact. Flags must come
// before the contact ID.
func UpdateContactCommand(svc *services.Registry, args []string) error {
	fs := flag.NewFlagSet("update-contact", flag.ExitOnError)
	first := fs.String("first-name", "", "First name")
	last := fs.String("last-name", "", "Last name")
	email := fs.String("email", "", "Email address")
	phone := fs.String("phone", "", "Phone number")
	company := fs.String("company", "", "Company name")
	position := fs.String("position", "", "Job title")
	status := fs.String("status", "", "Status (active/inactive)")
	_ = fs.Parse(args)

	id, err := parseID(fs.Args(), "contact")
	if err != nil {
		return err
	}

	patch := services.ContactPatch{}
	if *first != "" {
		patch.FirstName = first
	}
	if *last != "" {
		patch.LastName = last
	}
	if *email != "" {
		patch.Email = email
	}
	if *phone != "" {
		patch.Phone = phone
	}
	if *company != "" {
		patch.Company = company
	}
	if *position != "" {
		patch.Position = position
	}
	if *status != "" {
		patch.Status = status
	}

	contact, err := svc.Contacts.Update(context.Background(), id, patch)
	if err != nil {
		return fmt.Errorf("failed to update contact: %w", err)
	}

	fmt.Printf("✓ Contact updated: %s (ID: %d)\n", contact.FullName(), contact.ID)
	return nil
}

// DeleteContactCommand deletes a contact by ID.
func DeleteContactCommand(svc *services.Registry, args []string) error {
	id, err := parseID(args, "contact")
	if err != nil {
		return err
	}

	if err := svc.Contacts.Delete(context.Background(), id); err != nil {
		return fmt.Errorf("failed to delete contact: %w", err)
	}

	fmt.Printf("✓ Contact %d deleted\n", id)
	return nil
}

func parseID(args []string, kind string) (int, error) {
	if len(args) < 1 {
		return 0, fmt.Errorf("%s ID is required", kind)
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("invalid %s ID: %w", kind, err)
	}
	return id, nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func splitTags(raw string) []string {
	var tags []string
	for _, t := range strings.Split(raw, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
