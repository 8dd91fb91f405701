package entity

// ProposalRow is one row of the "Items Considered for Proposal" section.
// SrNo, Description, Unit and Specification come from the configured
// template and are not editable per quotation; Qty and Make are.
type ProposalRow struct {
	QuotationID   int64
	Position      int
	SrNo          int
	Description   string
	Unit          string
	Specification string
	Qty           string
	Make          string
}
