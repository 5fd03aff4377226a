package plan

import (
	"fmt"

	"github.com/lp-core/logicalplan/schema"
)

// ScanNode reads a table's rows. Its output schema is the table's
// schema, qualified by its canonical relation name.
type ScanNode struct {
	leafBase

	// TableQualifiedName is the table's fully qualified, canonical name.
	TableQualifiedName string
	// Alias is an optional canonical alias this scan is addressed by in
	// its query block; empty if the relation is unaliased.
	Alias string
}

// NewScanNode builds a scan over tableSchema, re-qualifying every
// column to the scan's canonical name (or alias, if given).
func NewScanNode(pf *PIDFactory, tableQualifiedName, alias string, tableSchema schema.Schema) *ScanNode {
	name := canonicalName(tableQualifiedName, alias)
	out := make(schema.Schema, len(tableSchema))
	for i, c := range tableSchema {
		out[i] = c.WithQualifier(name)
	}
	return &ScanNode{
		leafBase:           leafBase{pid: pf.NextPID(), out: out},
		TableQualifiedName: tableQualifiedName,
		Alias:              alias,
	}
}

func canonicalName(tableQualifiedName, alias string) string {
	if alias != "" {
		return alias
	}
	return tableQualifiedName
}

// CanonicalName is the name relation-lineage and predicate-placement
// analyses use to identify this scan: the alias if set, otherwise the
// table's qualified name.
func (s *ScanNode) CanonicalName() string {
	return canonicalName(s.TableQualifiedName, s.Alias)
}

// RelationLineageName satisfies the lineage-tracking contract package
// visit uses to collect relation names without importing node-kind
// specifics.
func (s *ScanNode) RelationLineageName() string {
	return s.CanonicalName()
}

func (s *ScanNode) Kind() Kind { return KindScan }

func (s *ScanNode) WithChildren(children ...LogicalNode) (LogicalNode, error) {
	if err := checkLeafChildren(KindScan, children); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *ScanNode) Clone(pf *PIDFactory) LogicalNode {
	cp := *s
	cp.pid = pf.NextPID()
	cp.out = s.out.Clone()
	return &cp
}

func (s *ScanNode) PlanString() string {
	if s.Alias != "" {
		return fmt.Sprintf("Scan(%s as %s)", s.TableQualifiedName, s.Alias)
	}
	return fmt.Sprintf("Scan(%s)", s.TableQualifiedName)
}

// PartitionedScanNode is a ScanNode variant that reads a table from
// multiple partitions; it carries the same payload plus the list of
// partition identifiers the executor is expected to fan out across.
type PartitionedScanNode struct {
	ScanNode

	Partitions []string
}

// NewPartitionedScanNode builds a partitioned scan.
func NewPartitionedScanNode(pf *PIDFactory, tableQualifiedName, alias string, tableSchema schema.Schema, partitions []string) *PartitionedScanNode {
	scan := NewScanNode(pf, tableQualifiedName, alias, tableSchema)
	return &PartitionedScanNode{ScanNode: *scan, Partitions: partitions}
}

func (s *PartitionedScanNode) Kind() Kind { return KindPartitionedScan }

func (s *PartitionedScanNode) WithChildren(children ...LogicalNode) (LogicalNode, error) {
	if err := checkLeafChildren(KindPartitionedScan, children); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *PartitionedScanNode) Clone(pf *PIDFactory) LogicalNode {
	cp := *s
	cp.pid = pf.NextPID()
	cp.out = s.out.Clone()
	cp.Partitions = append([]string(nil), s.Partitions...)
	return &cp
}

func (s *PartitionedScanNode) PlanString() string {
	return fmt.Sprintf("PartitionedScan(%s, %d partitions)", s.TableQualifiedName, len(s.Partitions))
}
