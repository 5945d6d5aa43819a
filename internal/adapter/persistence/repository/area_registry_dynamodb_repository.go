package repository

import (
	"context"

	"cabletv_backoffice/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultAreasTableName = "areas"

type areaItem struct {
	ID   string `dynamodbav:"id"`
	Name string `dynamodbav:"name"`
}

// AreaDynamoRepository reads the area registry owned by the area management
// screens.
//
// Table requirements:
//   - PK: id (string)

type AreaDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IAreaRegistry = (*AreaDynamoRepository)(nil)

func NewAreaDynamoRepository(ddb *dynamodb.Client) *AreaDynamoRepository {
	return &AreaDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("AREAS_TABLE", defaultAreasTableName),
	}
}

func (r *AreaDynamoRepository) ListNames(ctx context.Context) ([]string, error) {
	var names []string
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		var items []areaItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			names = append(names, it.Name)
		}

		if out.LastEvaluatedKey == nil {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return names, nil
}
