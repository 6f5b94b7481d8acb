/*
Copyright © 2025 Sitestack Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package diff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const deployedTemplate = `AWSTemplateFormatVersion: '2010-09-09'
Description: AcmeCoDecapCmsTierStack

Resources:
  SiteBucket:
    Type: AWS::S3::Bucket
    Properties:
      BucketName: acme-co-prod-site
  Distribution:
    Type: AWS::CloudFront::Distribution
    Properties:
      DistributionConfig:
        Enabled: true
        Origins:
          - DomainName: !GetAtt SiteBucket.RegionalDomainName
  BuildProject:
    Type: AWS::CodeBuild::Project

Outputs:
  DistributionId:
    Value: !Ref Distribution
`

func TestCompareTemplates_Identical(t *testing.T) {
	change, err := compareTemplates(deployedTemplate, deployedTemplate+"\n\n")

	require.NoError(t, err)
	assert.False(t, change.HasChanges)
	assert.Equal(t, change.CurrentHash, change.ProposedHash)
	assert.Len(t, change.CurrentHash, 12)
}

func TestCompareTemplates_FormattingOnly(t *testing.T) {
	reformatted := `{"AWSTemplateFormatVersion": "2010-09-09", "Description": "AcmeCoDecapCmsTierStack",
  "Resources": {
    "SiteBucket": {"Type": "AWS::S3::Bucket", "Properties": {"BucketName": "acme-co-prod-site"}},
    "Distribution": {"Type": "AWS::CloudFront::Distribution", "Properties": {"DistributionConfig": {"Enabled": true,
      "Origins": [{"DomainName": !GetAtt SiteBucket.RegionalDomainName}]}}},
    "BuildProject": {"Type": "AWS::CodeBuild::Project"}},
  "Outputs": {"DistributionId": {"Value": !Ref Distribution}}}`

	change, err := compareTemplates(deployedTemplate, reformatted)

	require.NoError(t, err)
	assert.NotEqual(t, change.CurrentHash, change.ProposedHash)
	assert.False(t, change.HasChanges)
	assert.Empty(t, change.Resources)
}

func TestCompareTemplates_ResourceChanges(t *testing.T) {
	proposed := `AWSTemplateFormatVersion: '2010-09-09'
Description: AcmeCoDecapCmsTierStack

Resources:
  SiteBucket:
    Type: AWS::S3::Bucket
    Properties:
      BucketName: acme-co-prod-site
  Distribution:
    Type: AWS::CloudFront::Distribution
    Properties:
      DistributionConfig:
        Enabled: true
        Origins:
          - DomainName: SiteBucket.RegionalDomainName
  DecapWebhookFunction:
    Type: AWS::Lambda::Function

Outputs:
  DistributionId:
    Value: !Ref Distribution
`

	change, err := compareTemplates(deployedTemplate, proposed)

	require.NoError(t, err)
	assert.True(t, change.HasChanges)
	assert.Equal(t, []SectionDiff{{Name: "Resources", ChangeType: ChangeTypeModify}}, change.Sections)
	assert.Equal(t, []ResourceDiff{
		{LogicalID: "BuildProject", Type: "AWS::CodeBuild::Project", ChangeType: ChangeTypeRemove},
		{LogicalID: "DecapWebhookFunction", Type: "AWS::Lambda::Function", ChangeType: ChangeTypeAdd},
		{LogicalID: "Distribution", Type: "AWS::CloudFront::Distribution", ChangeType: ChangeTypeModify},
	}, change.Resources)
	assert.Equal(t, 1, change.Count(ChangeTypeAdd))
	assert.Equal(t, 1, change.Count(ChangeTypeModify))
	assert.Equal(t, 1, change.Count(ChangeTypeRemove))
}

func TestCompareTemplates_SectionAdded(t *testing.T) {
	proposed := deployedTemplate + `
Parameters:
  PriceClass:
    Type: String
`

	change, err := compareTemplates(deployedTemplate, proposed)

	require.NoError(t, err)
	assert.Equal(t, []SectionDiff{{Name: "Parameters", ChangeType: ChangeTypeAdd}}, change.Sections)
	assert.Empty(t, change.Resources)
}

func TestCompareTemplates_InvalidTemplate(t *testing.T) {
	_, err := compareTemplates(deployedTemplate, "Resources: [unclosed")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse proposed template")
}

func TestCompareTemplates_NotAMapping(t *testing.T) {
	_, err := compareTemplates("- a\n- b\n", deployedTemplate)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "template is not a mapping")
}
