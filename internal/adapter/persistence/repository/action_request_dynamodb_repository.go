package repository

import (
	"context"
	"errors"
	"time"

	"cabletv_backoffice/internal/domain/entities"
	"cabletv_backoffice/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultActionRequestsTableName = "action_requests"

type actionRequestItem struct {
	ID               string   `dynamodbav:"id"`
	CustomerID       string   `dynamodbav:"customer_id"`
	SelectedVCs      []string `dynamodbav:"selected_vcs,omitempty"`
	RequestedStatus  string   `dynamodbav:"requested_status"`
	CurrentStatus    string   `dynamodbav:"current_status"`
	RequestedBy      string   `dynamodbav:"requested_by"`
	RequestedAt      string   `dynamodbav:"requested_at"`
	Reason           string   `dynamodbav:"reason,omitempty"`
	Status           string   `dynamodbav:"status"`
	ResolvedBy       string   `dynamodbav:"resolved_by,omitempty"`
	ResolvedAt       string   `dynamodbav:"resolved_at,omitempty"`
	ResolutionReason string   `dynamodbav:"resolution_reason,omitempty"`
}

// ActionRequestDynamoRepository persists ActionRequest entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Resolve is conditional on the stored status still being pending, so two
// resolvers racing on the same request can never both win.

type ActionRequestDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IActionRequestRepository = (*ActionRequestDynamoRepository)(nil)

func NewActionRequestDynamoRepository(ddb *dynamodb.Client) *ActionRequestDynamoRepository {
	return &ActionRequestDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ACTION_REQUESTS_TABLE", defaultActionRequestsTableName),
	}
}

func (r *ActionRequestDynamoRepository) Create(ctx context.Context, req entities.ActionRequest) (entities.ActionRequest, error) {
	av, err := attributevalue.MarshalMap(toActionRequestItem(req))
	if err != nil {
		return entities.ActionRequest{}, err
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
		return entities.ActionRequest{}, err
	}
	return req, nil
}

func (r *ActionRequestDynamoRepository) GetByID(ctx context.Context, id string) (entities.ActionRequest, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ActionRequest{}, err
	}
	if len(out.Item) == 0 {
		return entities.ActionRequest{}, nil
	}

	var it actionRequestItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ActionRequest{}, err
	}
	return fromActionRequestItem(it), nil
}

func (r *ActionRequestDynamoRepository) ListPending(ctx context.Context) ([]entities.ActionRequest, error) {
	var requests []entities.ActionRequest
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:        aws.String(r.tableName),
			FilterExpression: aws.String("#status = :pending"),
			ExpressionAttributeNames: map[string]string{
				"#status": "status",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":pending": &types.AttributeValueMemberS{Value: string(entities.RequestStatusPending)},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		var items []actionRequestItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			requests = append(requests, fromActionRequestItem(it))
		}

		if out.LastEvaluatedKey == nil {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return requests, nil
}

// Resolve writes the terminal state. A request that is no longer pending
// comes back as a zero-value entity.
func (r *ActionRequestDynamoRepository) Resolve(ctx context.Context, req entities.ActionRequest) (entities.ActionRequest, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: req.ID},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :pending"),
		UpdateExpression:    aws.String("SET #status = :status, #resolved_by = :resolved_by, #resolved_at = :resolved_at, #resolution_reason = :resolution_reason"),
		ExpressionAttributeNames: map[string]string{
			"#id":                "id",
			"#status":            "status",
			"#resolved_by":       "resolved_by",
			"#resolved_at":       "resolved_at",
			"#resolution_reason": "resolution_reason",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pending":           &types.AttributeValueMemberS{Value: string(entities.RequestStatusPending)},
			":status":            &types.AttributeValueMemberS{Value: string(req.Status)},
			":resolved_by":       &types.AttributeValueMemberS{Value: req.ResolvedBy},
			":resolved_at":       &types.AttributeValueMemberS{Value: req.ResolvedAt.UTC().Format(time.RFC3339Nano)},
			":resolution_reason": &types.AttributeValueMemberS{Value: req.ResolutionReason},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.ActionRequest{}, nil
		}
		return entities.ActionRequest{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.ActionRequest{}, nil
	}

	var it actionRequestItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.ActionRequest{}, err
	}
	return fromActionRequestItem(it), nil
}

func toActionRequestItem(req entities.ActionRequest) actionRequestItem {
	it := actionRequestItem{
		ID:               req.ID,
		CustomerID:       req.CustomerID,
		SelectedVCs:      req.SelectedVCs,
		RequestedStatus:  string(req.RequestedStatus),
		CurrentStatus:    string(req.CurrentStatus),
		RequestedBy:      req.RequestedBy,
		RequestedAt:      req.RequestedAt.UTC().Format(time.RFC3339Nano),
		Reason:           req.Reason,
		Status:           string(req.Status),
		ResolvedBy:       req.ResolvedBy,
		ResolutionReason: req.ResolutionReason,
	}
	if !req.ResolvedAt.IsZero() {
		it.ResolvedAt = req.ResolvedAt.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromActionRequestItem(it actionRequestItem) entities.ActionRequest {
	requestedAt, _ := time.Parse(time.RFC3339Nano, it.RequestedAt)
	resolvedAt, _ := time.Parse(time.RFC3339Nano, it.ResolvedAt)
	return entities.ActionRequest{
		ID:               it.ID,
		CustomerID:       it.CustomerID,
		SelectedVCs:      it.SelectedVCs,
		RequestedStatus:  entities.CustomerStatus(it.RequestedStatus),
		CurrentStatus:    entities.AggregateStatus(it.CurrentStatus),
		RequestedBy:      it.RequestedBy,
		RequestedAt:      requestedAt,
		Reason:           it.Reason,
		Status:           entities.RequestStatus(it.Status),
		ResolvedBy:       it.ResolvedBy,
		ResolvedAt:       resolvedAt,
		ResolutionReason: it.ResolutionReason,
	}
}
