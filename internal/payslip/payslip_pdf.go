package payslip

import (
	"bytes"
	"fmt"
	"strings"
)

func buildPayslipPDF(lines []string) ([]byte, error) {
	if len(lines) == 0 {
		lines = []string{"Payslip"}
	}

	var content strings.Builder
	content.WriteString("BT\n/F1 12 Tf\n50 800 Td\n")
	for i, line := range lines {
		escaped := pdfEscape(line)
		if i == 0 {
			content.WriteString(fmt.Sprintf("(%s) Tj\n", escaped))
			continue
		}
		content.WriteString(fmt.Sprintf("T* (%s) Tj\n", escaped))
	}
	content.WriteString("ET")

	stream := content.String()
	objects := []string{
		"1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n",
		"2 0 obj\n<< /Type /Pages /Kids [3 0 R] /Count 1 >>\nendobj\n",
		"3 0 obj\n<< /Type /Page /Parent 2 0 R /MediaBox [0 0 595 842] /Resources << /Font << /F1 4 0 R >> >> /Contents 5 0 R >>\nendobj\n",
		"4 0 obj\n<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>\nendobj\n",
		fmt.Sprintf("5 0 obj\n<< /Length %d >>\nstream\n%s\nendstream\nendobj\n", len(stream), stream),
	}

	var out bytes.Buffer
	out.WriteString("%PDF-1.4\n")
	offsets := make([]int, 0, len(objects)+1)
	offsets = append(offsets, 0)

	for _, obj := range objects {
		offsets = append(offsets, out.Len())
		out.WriteString(obj)
	}

	xrefStart := out.Len()
	out.WriteString(fmt.Sprintf("xref\n0 %d\n", len(offsets)))
	out.WriteString("0000000000 65535 f \n")
	for i := 1; i < len(offsets); i++ {
		out.WriteString(fmt.Sprintf("%010d 00000 n \n", offsets[i]))
	}
	out.WriteString(fmt.Sprintf("trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF", len(offsets), xrefStart))

	return out.Bytes(), nil
}

func pdfEscape(v string) string {
	replacer := strings.NewReplacer("\\", "\\\\", "(", "\\(", ")", "\\)")
	return replacer.Replace(v)
}

// statementLines flattens a statement into printable payslip lines. Zero
// deduction components read "none" instead of a bare zero.
func statementLines(resp StatementResponse) []string {
	lines := []string{
		fmt.Sprintf("Payslip %02d/%d", resp.Month, resp.Year),
		fmt.Sprintf("Employee: %s", resp.EmployeeName),
		"",
		fmt.Sprintf("Base salary: %.2f (%s)", resp.BaseSalary, resp.SalaryNote),
		fmt.Sprintf("Commission: %s", amountOrNone(resp.Commission)),
		fmt.Sprintf("Overtime pay: %s (%.1f hours)", amountOrNone(resp.OvertimePay), resp.OvertimeHours),
		fmt.Sprintf("Total earnings: %.2f", resp.TotalEarnings),
		"",
		fmt.Sprintf("Late deduction: %s", amountOrNone(resp.LateDeduction)),
		fmt.Sprintf("Absence deduction: %s", amountOrNone(resp.AbsentDeduction)),
		fmt.Sprintf("Other deductions: %s", amountOrNone(resp.CustomDeduction)),
		fmt.Sprintf("Advances: %s", amountOrNone(resp.Advances)),
	}

	for _, adv := range resp.AdvanceDetails {
		lines = append(lines, fmt.Sprintf("  advance %s: %.2f", adv.Date, adv.Amount))
	}

	lines = append(lines,
		fmt.Sprintf("Total deductions: %.2f", resp.TotalDeductions),
		"",
		fmt.Sprintf("Bonuses: %s", amountOrNone(resp.BonusTotal)),
		fmt.Sprintf("Net salary: %.2f", resp.NetSalaryWithBonuses),
		"",
		fmt.Sprintf("Attendance: %d present, %d late, %d absent, %d on leave",
			resp.PresentDays, resp.LateDays, resp.AbsentDays, resp.LeaveDays),
		fmt.Sprintf("Worked hours: %.1f, late minutes: %d", resp.TotalWorkHours, resp.TotalLateMinutes),
	)

	return lines
}

func amountOrNone(v float64) string {
	if v == 0 {
		return "none"
	}
	return fmt.Sprintf("%.2f", v)
}
