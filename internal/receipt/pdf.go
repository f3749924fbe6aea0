// Package receipt renders the fixed-layout registration receipt.
package receipt

import (
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"

	"github.com/kunalz06/btf-website/internal/model"
)

const eventTitle = "BUILD THE FUTURE - Hackathon"

type Renderer struct{}

func NewRenderer() *Renderer { return &Renderer{} }

func (r *Renderer) Render(w io.Writer, p *model.Participant) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(18, 18, 18)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 24)
	pdf.CellFormat(0, 12, "Registration Receipt", "", 1, "C", false, 0, "")
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, eventTitle, "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 12)
	line := func(s string) {
		pdf.CellFormat(0, 7, s, "", 1, "L", false, 0, "")
	}
	line(fmt.Sprintf("Participant Name: %s", p.Name))
	line(fmt.Sprintf("Team Number: %d", p.TeamNumber))
	line(fmt.Sprintf("Participant ID: %s", p.ParticipantID))
	line(fmt.Sprintf("Email: %s", p.Email))
	line(fmt.Sprintf("Registration Date: %s", p.RegisteredAt.Format("Mon Jan 02 2006")))
	pdf.Ln(4)
	line("Status: REGISTRATION CONFIRMED")
	pdf.Ln(18)

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, "Thank you for participating!", "", 1, "C", false, 0, "")

	return pdf.Output(w)
}
