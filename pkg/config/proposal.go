package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// CompanyProfile is the vendor letterhead block printed on every proposal.
type CompanyProfile struct {
	Name     string `mapstructure:"name"`
	Address  string `mapstructure:"address"`
	Phone    string `mapstructure:"phone"`
	Email    string `mapstructure:"email"`
	GSTIN    string `mapstructure:"gstin"`
	LogoPath string `mapstructure:"logo_path"` // missing file is skipped, never an error
}

// ProposalTemplateRow is one fixed row of the "Items Considered for Proposal"
// section. SrNo, Description, Unit and Specification are structural; Qty and
// Make are defaults that a saved quotation may override.
type ProposalTemplateRow struct {
	SrNo          int    `mapstructure:"sr_no" json:"sr_no"`
	Description   string `mapstructure:"description" json:"description"`
	Unit          string `mapstructure:"unit" json:"unit"`
	Specification string `mapstructure:"specification" json:"specification"`
	Qty           string `mapstructure:"qty" json:"qty"`
	Make          string `mapstructure:"make" json:"make"`
}

// SectionRow is one label/remark pair of a static proposal section.
type SectionRow struct {
	Label  string `mapstructure:"label" json:"label"`
	Remark string `mapstructure:"remark" json:"remark"`
}

// ProposalConfig aggregates everything the PDF composer needs besides the
// quotation itself: letterhead data and the static section tables.
type ProposalConfig struct {
	Company          CompanyProfile        `mapstructure:"company"`
	ProposalRows     []ProposalTemplateRow `mapstructure:"proposal_rows"`
	OtherCharges     []SectionRow          `mapstructure:"other_charges"`
	OtherChargesNote string                `mapstructure:"other_charges_note"`
	ScopeOfWork      []SectionRow          `mapstructure:"scope_of_work"`
	Terms            []SectionRow          `mapstructure:"terms"`
	Warranty         []SectionRow          `mapstructure:"warranty"`
}

// LoadProposal reads the proposal YAML file. All sections are optional; an
// empty or absent section is simply skipped at render time.
func LoadProposal(path string) (*ProposalConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read proposal config %s: %w", path, err)
	}
	var cfg ProposalConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parse proposal config: %w", err)
	}
	return &cfg, nil
}
