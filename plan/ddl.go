package plan

import (
	"fmt"

	"github.com/lp-core/logicalplan/schema"
)

// InsertNode writes its child's rows into TargetTable.
type InsertNode struct {
	unaryBase

	TargetTable string
}

// NewInsertNode builds an insert over child.
func NewInsertNode(pf *PIDFactory, targetTable string, child LogicalNode) *InsertNode {
	return &InsertNode{
		unaryBase:   unaryBase{pid: pf.NextPID(), child: child},
		TargetTable: targetTable,
	}
}

func (n *InsertNode) Kind() Kind               { return KindInsert }
func (n *InsertNode) OutSchema() schema.Schema { return n.InSchema() }

func (n *InsertNode) WithChildren(children ...LogicalNode) (LogicalNode, error) {
	child, err := checkUnaryChildren(KindInsert, children)
	if err != nil {
		return nil, err
	}
	cp := *n
	cp.child = child
	return &cp, nil
}

func (n *InsertNode) Clone(pf *PIDFactory) LogicalNode {
	cp := *n
	cp.pid = pf.NextPID()
	return &cp
}

func (n *InsertNode) PlanString() string { return fmt.Sprintf("Insert(%s)", n.TargetTable) }

// CreateTableNode is a leaf DDL node creating a table with the given
// name and schema.
type CreateTableNode struct {
	leafBase

	TableName   string
	IfNotExists bool
}

// NewCreateTableNode builds a create-table node.
func NewCreateTableNode(pf *PIDFactory, tableName string, tableSchema schema.Schema, ifNotExists bool) *CreateTableNode {
	return &CreateTableNode{
		leafBase:    leafBase{pid: pf.NextPID(), out: tableSchema},
		TableName:   tableName,
		IfNotExists: ifNotExists,
	}
}

func (n *CreateTableNode) Kind() Kind { return KindCreateTable }

func (n *CreateTableNode) WithChildren(children ...LogicalNode) (LogicalNode, error) {
	if err := checkLeafChildren(KindCreateTable, children); err != nil {
		return nil, err
	}
	return n, nil
}

func (n *CreateTableNode) Clone(pf *PIDFactory) LogicalNode {
	cp := *n
	cp.pid = pf.NextPID()
	cp.out = n.out.Clone()
	return &cp
}

func (n *CreateTableNode) PlanString() string { return fmt.Sprintf("CreateTable(%s)", n.TableName) }

// DropTableNode is a leaf DDL node dropping a table.
type DropTableNode struct {
	leafBase

	TableName string
	IfExists  bool
}

// NewDropTableNode builds a drop-table node.
func NewDropTableNode(pf *PIDFactory, tableName string, ifExists bool) *DropTableNode {
	return &DropTableNode{leafBase: leafBase{pid: pf.NextPID()}, TableName: tableName, IfExists: ifExists}
}

func (n *DropTableNode) Kind() Kind { return KindDropTable }

func (n *DropTableNode) WithChildren(children ...LogicalNode) (LogicalNode, error) {
	if err := checkLeafChildren(KindDropTable, children); err != nil {
		return nil, err
	}
	return n, nil
}

func (n *DropTableNode) Clone(pf *PIDFactory) LogicalNode {
	cp := *n
	cp.pid = pf.NextPID()
	return &cp
}

func (n *DropTableNode) PlanString() string { return fmt.Sprintf("DropTable(%s)", n.TableName) }

// CreateDatabaseNode is a leaf DDL node creating a database.
type CreateDatabaseNode struct {
	leafBase

	DatabaseName string
	IfNotExists  bool
}

// NewCreateDatabaseNode builds a create-database node.
func NewCreateDatabaseNode(pf *PIDFactory, databaseName string, ifNotExists bool) *CreateDatabaseNode {
	return &CreateDatabaseNode{leafBase: leafBase{pid: pf.NextPID()}, DatabaseName: databaseName, IfNotExists: ifNotExists}
}

func (n *CreateDatabaseNode) Kind() Kind { return KindCreateDatabase }

func (n *CreateDatabaseNode) WithChildren(children ...LogicalNode) (LogicalNode, error) {
	if err := checkLeafChildren(KindCreateDatabase, children); err != nil {
		return nil, err
	}
	return n, nil
}

func (n *CreateDatabaseNode) Clone(pf *PIDFactory) LogicalNode {
	cp := *n
	cp.pid = pf.NextPID()
	return &cp
}

func (n *CreateDatabaseNode) PlanString() string {
	return fmt.Sprintf("CreateDatabase(%s)", n.DatabaseName)
}

// DropDatabaseNode is a leaf DDL node dropping a database.
type DropDatabaseNode struct {
	leafBase

	DatabaseName string
	IfExists     bool
}

// NewDropDatabaseNode builds a drop-database node.
func NewDropDatabaseNode(pf *PIDFactory, databaseName string, ifExists bool) *DropDatabaseNode {
	return &DropDatabaseNode{leafBase: leafBase{pid: pf.NextPID()}, DatabaseName: databaseName, IfExists: ifExists}
}

func (n *DropDatabaseNode) Kind() Kind { return KindDropDatabase }

func (n *DropDatabaseNode) WithChildren(children ...LogicalNode) (LogicalNode, error) {
	if err := checkLeafChildren(KindDropDatabase, children); err != nil {
		return nil, err
	}
	return n, nil
}

func (n *DropDatabaseNode) Clone(pf *PIDFactory) LogicalNode {
	cp := *n
	cp.pid = pf.NextPID()
	return &cp
}

func (n *DropDatabaseNode) PlanString() string {
	return fmt.Sprintf("DropDatabase(%s)", n.DatabaseName)
}

// CreateIndexNode is a leaf DDL node creating an index over a table's
// columns.
type CreateIndexNode struct {
	leafBase

	IndexName string
	TableName string
	Columns   []string
}

// NewCreateIndexNode builds a create-index node.
func NewCreateIndexNode(pf *PIDFactory, indexName, tableName string, columns []string) *CreateIndexNode {
	return &CreateIndexNode{leafBase: leafBase{pid: pf.NextPID()}, IndexName: indexName, TableName: tableName, Columns: columns}
}

func (n *CreateIndexNode) Kind() Kind { return KindCreateIndex }

func (n *CreateIndexNode) WithChildren(children ...LogicalNode) (LogicalNode, error) {
	if err := checkLeafChildren(KindCreateIndex, children); err != nil {
		return nil, err
	}
	return n, nil
}

func (n *CreateIndexNode) Clone(pf *PIDFactory) LogicalNode {
	cp := *n
	cp.pid = pf.NextPID()
	cp.Columns = append([]string(nil), n.Columns...)
	return &cp
}

func (n *CreateIndexNode) PlanString() string {
	return fmt.Sprintf("CreateIndex(%s on %s)", n.IndexName, n.TableName)
}

// DropIndexNode is a leaf DDL node dropping an index.
type DropIndexNode struct {
	leafBase

	IndexName string
	TableName string
}

// NewDropIndexNode builds a drop-index node.
func NewDropIndexNode(pf *PIDFactory, indexName, tableName string) *DropIndexNode {
	return &DropIndexNode{leafBase: leafBase{pid: pf.NextPID()}, IndexName: indexName, TableName: tableName}
}

func (n *DropIndexNode) Kind() Kind { return KindDropIndex }

func (n *DropIndexNode) WithChildren(children ...LogicalNode) (LogicalNode, error) {
	if err := checkLeafChildren(KindDropIndex, children); err != nil {
		return nil, err
	}
	return n, nil
}

func (n *DropIndexNode) Clone(pf *PIDFactory) LogicalNode {
	cp := *n
	cp.pid = pf.NextPID()
	return &cp
}

func (n *DropIndexNode) PlanString() string {
	return fmt.Sprintf("DropIndex(%s on %s)", n.IndexName, n.TableName)
}

// StoreNode marks a distribution boundary: its child's rows are
// materialized to the named sink (the pull-server data-shuffle
// component consumes it from there) before the next phase reads them
// back. Pass-through schema.
type StoreNode struct {
	unaryBase

	SinkName string
}

// NewStoreNode builds a store boundary over child.
func NewStoreNode(pf *PIDFactory, sinkName string, child LogicalNode) *StoreNode {
	return &StoreNode{unaryBase: unaryBase{pid: pf.NextPID(), child: child}, SinkName: sinkName}
}

func (n *StoreNode) Kind() Kind               { return KindStore }
func (n *StoreNode) OutSchema() schema.Schema { return n.InSchema() }

func (n *StoreNode) WithChildren(children ...LogicalNode) (LogicalNode, error) {
	child, err := checkUnaryChildren(KindStore, children)
	if err != nil {
		return nil, err
	}
	cp := *n
	cp.child = child
	return &cp, nil
}

func (n *StoreNode) Clone(pf *PIDFactory) LogicalNode {
	cp := *n
	cp.pid = pf.NextPID()
	return &cp
}

func (n *StoreNode) PlanString() string { return fmt.Sprintf("Store(%s)", n.SinkName) }
