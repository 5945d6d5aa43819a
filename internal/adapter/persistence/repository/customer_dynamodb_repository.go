package repository

import (
	"context"
	"time"

	"cabletv_backoffice/internal/domain/entities"
	"cabletv_backoffice/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

const defaultCustomersTableName = "customers"

type connectionItem struct {
	VCNumber            string `dynamodbav:"vc_number"`
	IsPrimary           bool   `dynamodbav:"is_primary"`
	PlanName            string `dynamodbav:"plan_name"`
	PlanPrice           string `dynamodbav:"plan_price"`
	Status              string `dynamodbav:"status"`
	PreviousOutstanding string `dynamodbav:"previous_outstanding"`
	CurrentOutstanding  string `dynamodbav:"current_outstanding"`
	AssignedAt          string `dynamodbav:"assigned_at"`
}

type statusLogItem struct {
	ID             string `dynamodbav:"id"`
	VCNumber       string `dynamodbav:"vc_number,omitempty"`
	PreviousStatus string `dynamodbav:"previous_status"`
	NewStatus      string `dynamodbav:"new_status"`
	ChangedBy      string `dynamodbav:"changed_by"`
	ChangedAt      string `dynamodbav:"changed_at"`
	Reason         string `dynamodbav:"reason,omitempty"`
	RequestID      string `dynamodbav:"request_id,omitempty"`
}

type customerItem struct {
	ID                  string           `dynamodbav:"id"`
	Name                string           `dynamodbav:"name"`
	PhoneNumber         string           `dynamodbav:"phone_number"`
	Email               string           `dynamodbav:"email,omitempty"`
	Address             string           `dynamodbav:"address"`
	Area                string           `dynamodbav:"area"`
	VCNumber            string           `dynamodbav:"vc_number"`
	PackageName         string           `dynamodbav:"package_name"`
	Status              string           `dynamodbav:"status"`
	Disabled            bool             `dynamodbav:"disabled"`
	BillDueDate         int              `dynamodbav:"bill_due_date"`
	PackageAmount       string           `dynamodbav:"package_amount"`
	PreviousOutstanding string           `dynamodbav:"previous_outstanding"`
	CurrentOutstanding  string           `dynamodbav:"current_outstanding"`
	Connections         []connectionItem `dynamodbav:"connections"`
	StatusLogs          []statusLogItem  `dynamodbav:"status_logs"`
	CreatedAt           string           `dynamodbav:"created_at"`
	UpdatedAt           string           `dynamodbav:"updated_at"`
}

// CustomerDynamoRepository persists Customer documents in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The whole document (fields, connections, status logs) is written with a
// single PutItem, which is what makes a multi-VC status change atomic.

type CustomerDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICustomerRepository = (*CustomerDynamoRepository)(nil)

func NewCustomerDynamoRepository(ddb *dynamodb.Client) *CustomerDynamoRepository {
	return &CustomerDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CUSTOMERS_TABLE", defaultCustomersTableName),
	}
}

func (r *CustomerDynamoRepository) Create(ctx context.Context, c entities.Customer) (entities.Customer, error) {
	av, err := attributevalue.MarshalMap(toCustomerItem(c))
	if err != nil {
		return entities.Customer{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Customer{}, err
	}
	return c, nil
}

func (r *CustomerDynamoRepository) GetByID(ctx context.Context, id string) (entities.Customer, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Customer{}, err
	}
	if len(out.Item) == 0 {
		return entities.Customer{}, nil
	}

	var it customerItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Customer{}, err
	}
	return fromCustomerItem(it), nil
}

func (r *CustomerDynamoRepository) Save(ctx context.Context, c entities.Customer) (entities.Customer, error) {
	av, err := attributevalue.MarshalMap(toCustomerItem(c))
	if err != nil {
		return entities.Customer{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.Customer{}, err
	}
	return c, nil
}

func (r *CustomerDynamoRepository) List(ctx context.Context) ([]entities.Customer, error) {
	var customers []entities.Customer
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		var items []customerItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			customers = append(customers, fromCustomerItem(it))
		}

		if out.LastEvaluatedKey == nil {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return customers, nil
}

func toCustomerItem(c entities.Customer) customerItem {
	conns := make([]connectionItem, len(c.Connections))
	for i, conn := range c.Connections {
		conns[i] = connectionItem{
			VCNumber:            conn.VCNumber,
			IsPrimary:           conn.IsPrimary,
			PlanName:            conn.PlanName,
			PlanPrice:           conn.PlanPrice.String(),
			Status:              string(conn.Status),
			PreviousOutstanding: conn.PreviousOutstanding.String(),
			CurrentOutstanding:  conn.CurrentOutstanding.String(),
			AssignedAt:          conn.AssignedAt.UTC().Format(time.RFC3339Nano),
		}
	}
	logs := make([]statusLogItem, len(c.StatusLogs))
	for i, l := range c.StatusLogs {
		logs[i] = statusLogItem{
			ID:             l.ID,
			VCNumber:       l.VCNumber,
			PreviousStatus: string(l.PreviousStatus),
			NewStatus:      string(l.NewStatus),
			ChangedBy:      l.ChangedBy,
			ChangedAt:      l.ChangedAt.UTC().Format(time.RFC3339Nano),
			Reason:         l.Reason,
			RequestID:      l.RequestID,
		}
	}
	return customerItem{
		ID:                  c.ID,
		Name:                c.Name,
		PhoneNumber:         c.PhoneNumber,
		Email:               c.Email,
		Address:             c.Address,
		Area:                c.Area,
		VCNumber:            c.VCNumber,
		PackageName:         c.PackageName,
		Status:              string(c.Status),
		Disabled:            c.Disabled,
		BillDueDate:         c.BillDueDate,
		PackageAmount:       c.PackageAmount.String(),
		PreviousOutstanding: c.PreviousOutstanding.String(),
		CurrentOutstanding:  c.CurrentOutstanding.String(),
		Connections:         conns,
		StatusLogs:          logs,
		CreatedAt:           c.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:           c.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromCustomerItem(it customerItem) entities.Customer {
	conns := make([]entities.Connection, len(it.Connections))
	for i, conn := range it.Connections {
		assignedAt, _ := time.Parse(time.RFC3339Nano, conn.AssignedAt)
		conns[i] = entities.Connection{
			VCNumber:            conn.VCNumber,
			IsPrimary:           conn.IsPrimary,
			PlanName:            conn.PlanName,
			PlanPrice:           decimalFromString(conn.PlanPrice),
			Status:              entities.CustomerStatus(conn.Status),
			PreviousOutstanding: decimalFromString(conn.PreviousOutstanding),
			CurrentOutstanding:  decimalFromString(conn.CurrentOutstanding),
			AssignedAt:          assignedAt,
		}
	}
	logs := make([]entities.StatusLog, len(it.StatusLogs))
	for i, l := range it.StatusLogs {
		changedAt, _ := time.Parse(time.RFC3339Nano, l.ChangedAt)
		logs[i] = entities.StatusLog{
			ID:             l.ID,
			VCNumber:       l.VCNumber,
			PreviousStatus: entities.CustomerStatus(l.PreviousStatus),
			NewStatus:      entities.CustomerStatus(l.NewStatus),
			ChangedBy:      l.ChangedBy,
			ChangedAt:      changedAt,
			Reason:         l.Reason,
			RequestID:      l.RequestID,
		}
	}
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Customer{
		ID:                  it.ID,
		Name:                it.Name,
		PhoneNumber:         it.PhoneNumber,
		Email:               it.Email,
		Address:             it.Address,
		Area:                it.Area,
		VCNumber:            it.VCNumber,
		PackageName:         it.PackageName,
		Status:              entities.CustomerStatus(it.Status),
		Disabled:            it.Disabled,
		BillDueDate:         it.BillDueDate,
		PackageAmount:       decimalFromString(it.PackageAmount),
		PreviousOutstanding: decimalFromString(it.PreviousOutstanding),
		CurrentOutstanding:  decimalFromString(it.CurrentOutstanding),
		Connections:         conns,
		StatusLogs:          logs,
		CreatedAt:           createdAt,
		UpdatedAt:           updatedAt,
	}
}

func decimalFromString(s string) decimal.Decimal {
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
