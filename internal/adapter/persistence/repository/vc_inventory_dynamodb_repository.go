package repository

import (
	"context"
	"errors"

	"cabletv_backoffice/internal/domain/entities"
	"cabletv_backoffice/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultVCInventoryTableName = "vc_inventory"

type vcInventoryItem struct {
	VCNumber   string `dynamodbav:"vc_number"`
	Status     string `dynamodbav:"status"`
	CustomerID string `dynamodbav:"customer_id,omitempty"`
}

// VCInventoryDynamoRepository manages the viewing-card stock.
//
// Table requirements:
//   - PK: vc_number (string)
//
// Assign flips available → active with a condition on the stored status, so
// the table enforces the one-customer-per-card rule no matter how many
// importers race on the same card.

type VCInventoryDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IVCInventory = (*VCInventoryDynamoRepository)(nil)

func NewVCInventoryDynamoRepository(ddb *dynamodb.Client) *VCInventoryDynamoRepository {
	return &VCInventoryDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("VC_INVENTORY_TABLE", defaultVCInventoryTableName),
	}
}

func (r *VCInventoryDynamoRepository) Lookup(ctx context.Context, vcNumber string) (entities.VCInventoryItem, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"vc_number": &types.AttributeValueMemberS{Value: vcNumber},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.VCInventoryItem{}, err
	}
	if len(out.Item) == 0 {
		return entities.VCInventoryItem{}, nil
	}

	var it vcInventoryItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.VCInventoryItem{}, err
	}
	return fromVCInventoryItem(it), nil
}

func (r *VCInventoryDynamoRepository) List(ctx context.Context) ([]entities.VCInventoryItem, error) {
	var items []entities.VCInventoryItem
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		var raw []vcInventoryItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &raw); err != nil {
			return nil, err
		}
		for _, it := range raw {
			items = append(items, fromVCInventoryItem(it))
		}

		if out.LastEvaluatedKey == nil {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return items, nil
}

func (r *VCInventoryDynamoRepository) Assign(ctx context.Context, vcNumber, customerID string) error {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"vc_number": &types.AttributeValueMemberS{Value: vcNumber},
		},
		ConditionExpression: aws.String("attribute_exists(#vc) AND #status = :available"),
		UpdateExpression:    aws.String("SET #status = :active, #customer_id = :customer_id"),
		ExpressionAttributeNames: map[string]string{
			"#vc":          "vc_number",
			"#status":      "status",
			"#customer_id": "customer_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":available":   &types.AttributeValueMemberS{Value: string(entities.VCStatusAvailable)},
			":active":      &types.AttributeValueMemberS{Value: string(entities.VCStatusActive)},
			":customer_id": &types.AttributeValueMemberS{Value: customerID},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return interfaces.ErrVCConflict
		}
		return err
	}
	return nil
}

func (r *VCInventoryDynamoRepository) Release(ctx context.Context, vcNumber string) error {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"vc_number": &types.AttributeValueMemberS{Value: vcNumber},
		},
		ConditionExpression: aws.String("attribute_exists(#vc)"),
		UpdateExpression:    aws.String("SET #status = :available REMOVE #customer_id"),
		ExpressionAttributeNames: map[string]string{
			"#vc":          "vc_number",
			"#status":      "status",
			"#customer_id": "customer_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":available": &types.AttributeValueMemberS{Value: string(entities.VCStatusAvailable)},
		},
	})
	return err
}

func fromVCInventoryItem(it vcInventoryItem) entities.VCInventoryItem {
	return entities.VCInventoryItem{
		VCNumber:   it.VCNumber,
		Status:     entities.VCStatus(it.Status),
		CustomerID: it.CustomerID,
	}
}
