package repository

import (
	"context"

	"cabletv_backoffice/internal/domain/entities"
	"cabletv_backoffice/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultPackagesTableName = "packages"

type packageItem struct {
	ID       string `dynamodbav:"id"`
	Name     string `dynamodbav:"name"`
	Price    string `dynamodbav:"price"`
	IsActive bool   `dynamodbav:"is_active"`
}

// PackageDynamoRepository reads the channel-package registry owned by the
// package management screens.
//
// Table requirements:
//   - PK: id (string)

type PackageDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPackageRegistry = (*PackageDynamoRepository)(nil)

func NewPackageDynamoRepository(ddb *dynamodb.Client) *PackageDynamoRepository {
	return &PackageDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PACKAGES_TABLE", defaultPackagesTableName),
	}
}

func (r *PackageDynamoRepository) ListActive(ctx context.Context) ([]entities.Package, error) {
	var packages []entities.Package
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:        aws.String(r.tableName),
			FilterExpression: aws.String("#is_active = :true"),
			ExpressionAttributeNames: map[string]string{
				"#is_active": "is_active",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":true": &types.AttributeValueMemberBOOL{Value: true},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		var items []packageItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			packages = append(packages, entities.Package{
				ID:       it.ID,
				Name:     it.Name,
				Price:    decimalFromString(it.Price),
				IsActive: it.IsActive,
			})
		}

		if out.LastEvaluatedKey == nil {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return packages, nil
}
